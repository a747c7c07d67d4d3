package derivative

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/thebartekbanach/imfilter/pkg/cache"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/filter"
	"github.com/thebartekbanach/imfilter/pkg/loader"
	"github.com/thebartekbanach/imfilter/pkg/logger"
	"go.uber.org/zap"
)

type service struct {
	config          Config
	keyBuilder      cachekey.Builder
	registry        filter.Registry
	dataManager     loader.DataManager
	pipeline        filter.Pipeline
	derivativeCache cache.DerivativeCache
	metrics         *Metrics
	log             *zap.Logger

	flights flightGroup
}

var _ Service = (*service)(nil)

func NewService(
	config Config,
	keyBuilder cachekey.Builder,
	registry filter.Registry,
	dataManager loader.DataManager,
	pipeline filter.Pipeline,
	derivativeCache cache.DerivativeCache,
	metrics *Metrics,
	log *zap.Logger,
) Service {
	if metrics == nil {
		// collectors registered on a private registry are never exposed
		metrics, _ = NewMetrics(prometheus.NewRegistry())
	}

	return &service{
		config:          config,
		keyBuilder:      keyBuilder,
		registry:        registry,
		dataManager:     dataManager,
		pipeline:        pipeline,
		derivativeCache: derivativeCache,
		metrics:         metrics,
		log:             logger.OrNop(log),
	}
}

func (s *service) EnsureDerivative(ctx context.Context, path, filterName, resolver string) (string, error) {
	return s.EnsureDerivativeWithRuntimeFilters(ctx, path, filterName, nil, resolver)
}

func (s *service) EnsureDerivativeWithRuntimeFilters(ctx context.Context, path, filterName string, params cachekey.RuntimeParameters, resolver string) (string, error) {
	if !s.registry.Has(filterName) {
		return "", ErrUnknownFilter
	}

	address, err := s.ensure(ctx, path, filterName, params, resolver)
	if err != nil {
		s.metrics.failure(filterName)
		return "", err
	}

	return address, nil
}

func (s *service) URLOfDerivative(ctx context.Context, path, filterName, resolver string) (string, error) {
	return s.URLOfDerivativeWithRuntimeFilters(ctx, path, filterName, nil, resolver)
}

func (s *service) URLOfDerivativeWithRuntimeFilters(ctx context.Context, path, filterName string, params cachekey.RuntimeParameters, resolver string) (string, error) {
	if !s.registry.Has(filterName) {
		return "", ErrUnknownFilter
	}

	key, err := s.keyBuilder.Build(path, filterName, params, resolver)
	if err != nil {
		return "", err
	}

	return s.resolve(ctx, key)
}

func (s *service) ensure(ctx context.Context, path, filterName string, params cachekey.RuntimeParameters, resolver string) (string, error) {
	key, err := s.keyBuilder.Build(path, filterName, params, resolver)
	if err != nil {
		return "", err
	}

	exists, err := s.derivativeCache.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	if exists {
		s.metrics.hit(filterName)
		return s.resolve(ctx, key)
	}

	s.metrics.miss(filterName)

	executed := false
	flight := s.flights.DoChan(key.Signature, func() (address interface{}, err error) {
		executed = true

		// singleflight re-panics outside of the request goroutine, where
		// net/http cannot recover it
		defer func() {
			if recovered := recover(); recovered != nil {
				s.log.Error("derivative computation panicked",
					zap.String("filter", key.Filter),
					zap.String("path", key.Path),
					zap.String("signature", key.Signature),
					zap.Any("panic", recovered),
					zap.Stack("stack"),
				)
				address, err = nil, fmt.Errorf("%w: %v", ErrComputationPanicked, recovered)
			}
		}()

		computeCtx, cancel := s.computeContext(ctx)
		defer cancel()

		return s.compute(computeCtx, key, params)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case result := <-flight:
		if !executed {
			s.metrics.share(filterName)
		}

		if result.Err != nil {
			return "", result.Err
		}

		return result.Val.(string), nil
	}
}

// computeContext detaches the computation from the caller, so a cancelled
// request does not abort the work other waiters depend on.
func (s *service) computeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if s.config.ComputeTimeout <= 0 {
		return context.WithCancel(detached)
	}

	return context.WithTimeout(detached, s.config.ComputeTimeout)
}

func (s *service) compute(ctx context.Context, key cachekey.Key, params cachekey.RuntimeParameters) (string, error) {
	// a flight that finished just before this one started has already stored the key
	exists, err := s.derivativeCache.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	if !exists {
		if err := s.computeAndStore(ctx, key, params); err != nil {
			return "", err
		}
	}

	return s.resolve(ctx, key)
}

func (s *service) computeAndStore(ctx context.Context, key cachekey.Key, params cachekey.RuntimeParameters) error {
	started := time.Now()

	source, err := s.dataManager.Find(ctx, key.Filter, key.Path)
	if err != nil {
		return sourceError(err)
	}

	derivative, err := s.pipeline.Apply(ctx, source, key.Filter, params)
	if err != nil {
		if errors.Is(err, filter.ErrUnknownFilter) || errors.Is(err, filter.ErrParamsRejected) {
			s.log.Debug("filter application failed",
				zap.String("filter", key.Filter),
				zap.String("path", key.Path),
				zap.String("resolver", key.Resolver),
				zap.String("signature", key.Signature),
				zap.Error(err),
			)

			return &FilterApplicationError{Filter: key.Filter, Path: key.Path, Err: err}
		}

		if errors.Is(err, ErrTransformFailed) {
			return err
		}

		return fmt.Errorf("%w: %w", ErrTransformFailed, err)
	}

	if err := s.derivativeCache.Store(ctx, key, derivative); err != nil {
		if errors.Is(err, ErrStoreFailed) {
			return err
		}

		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	s.metrics.observeCompute(key.Filter, started)
	s.log.Debug("derivative stored",
		zap.String("filter", key.Filter),
		zap.String("path", key.Path),
		zap.String("resolver", key.Resolver),
		zap.String("signature", key.Signature),
		zap.Duration("took", time.Since(started)),
	)

	return nil
}

// sourceError keeps ErrSourceNotFound for sources that do not exist and
// reports every other loader failure as ErrSourceUnavailable.
func sourceError(err error) error {
	switch {
	case errors.Is(err, ErrSourceNotFound):
		return err
	case errors.Is(err, loader.ErrNotAnImage):
		return fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
}

func (s *service) resolve(ctx context.Context, key cachekey.Key) (string, error) {
	address, err := s.derivativeCache.Resolve(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	return address, nil
}
