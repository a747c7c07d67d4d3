package cache

import (
	"context"
	"time"

	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/logger"
	"go.uber.org/zap"
)

type InvalidationServiceImplementation struct {
	invalidationsRepository cacherepositories.InvalidationsRepository
	derivativeCache         DerivativeCache
	log                     *zap.Logger
}

var _ InvalidationService = (*InvalidationServiceImplementation)(nil)

func NewInvalidationService(invalidationsRepository cacherepositories.InvalidationsRepository, derivativeCache DerivativeCache, log *zap.Logger) InvalidationService {
	return &InvalidationServiceImplementation{invalidationsRepository, derivativeCache, logger.OrNop(log)}
}

func (s *InvalidationServiceImplementation) GetLatestInvalidation(ctx context.Context) (cacherepositories.InvalidationModel, error) {
	return s.invalidationsRepository.GetLatestInvalidation(ctx)
}

// Invalidate removes cached derivatives matching paths and filters and records
// the run, including partial results of a failed one.
func (s *InvalidationServiceImplementation) Invalidate(ctx context.Context, paths, filters []string) (cacherepositories.InvalidationModel, error) {
	invalidationInfo := cacherepositories.InvalidationModel{
		RequestedPaths:         nonNil(paths),
		RequestedFilters:       nonNil(filters),
		InvalidatedDerivatives: []cacherepositories.CachedDerivativeModel{},
	}

	removed, invalidationError := s.derivativeCache.Invalidate(ctx, paths, filters)
	invalidationInfo.InvalidatedDerivatives = append(invalidationInfo.InvalidatedDerivatives, removed...)

	if invalidationError != nil {
		errText := invalidationError.Error()
		invalidationInfo.InvalidationError = &errText
	}

	invalidationInfo.InvalidationDate = time.Now().UTC().Truncate(time.Millisecond)
	if err := s.invalidationsRepository.CreateInvalidation(ctx, invalidationInfo); err != nil {
		return invalidationInfo, err
	}

	s.log.Info("cache invalidated",
		zap.Strings("paths", paths),
		zap.Strings("filters", filters),
		zap.Int("removed", len(removed)),
		zap.NamedError("invalidationError", invalidationError),
	)

	return invalidationInfo, invalidationError
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
