package cache

import (
	"context"
	"fmt"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/logger"
	"go.uber.org/zap"
)

type derivativeCache struct {
	derivativesRepository cacherepositories.CachedDerivativesRepository
	resolvers             map[string]cacherepositories.DerivativesStorage
	log                   *zap.Logger
}

var _ DerivativeCache = (*derivativeCache)(nil)

func NewDerivativeCache(
	derivativesRepository cacherepositories.CachedDerivativesRepository,
	resolvers map[string]cacherepositories.DerivativesStorage,
	log *zap.Logger,
) DerivativeCache {
	return &derivativeCache{
		derivativesRepository,
		resolvers,
		logger.OrNop(log),
	}
}

func (c *derivativeCache) Exists(ctx context.Context, key cachekey.Key) (bool, error) {
	storage, err := c.storageOf(key)
	if err != nil {
		return false, err
	}

	return storage.Exists(ctx, key)
}

func (c *derivativeCache) Store(ctx context.Context, key cachekey.Key, derivative binary.Binary) error {
	storage, err := c.storageOf(key)
	if err != nil {
		return err
	}

	info := cacherepositories.NewCachedDerivativeModel(key, derivative)
	created := true
	if err := c.derivativesRepository.CreateCachedDerivativeInfo(ctx, info); err != nil {
		if err != cacherepositories.ErrCachedDerivativeAlreadyExists {
			return fmt.Errorf("%w: %w", ErrStoreFailed, err)
		}

		created = false
	}

	if err := storage.Save(ctx, key, derivative); err != nil {
		if created {
			if rollbackErr := c.derivativesRepository.DeleteCachedDerivativeInfo(ctx, key.Signature); rollbackErr != nil {
				c.log.Warn("failed to roll back derivative metadata",
					zap.String("signature", key.Signature),
					zap.Error(rollbackErr),
				)
			}
		}

		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	return nil
}

func (c *derivativeCache) Resolve(ctx context.Context, key cachekey.Key) (string, error) {
	storage, err := c.storageOf(key)
	if err != nil {
		return "", err
	}

	return storage.Address(key), nil
}

func (c *derivativeCache) Invalidate(ctx context.Context, paths, filters []string) (removedEntries []cacherepositories.CachedDerivativeModel, err error) {
	prefixes := paths
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}

	removed := map[string]bool{}
	for _, prefix := range prefixes {
		entries, err := c.derivativesRepository.FindCachedDerivatives(ctx, prefix, filters)
		if err != nil {
			return removedEntries, err
		}

		for _, entry := range entries {
			if removed[entry.Signature] {
				continue
			}

			if err := c.remove(ctx, entry); err != nil {
				return removedEntries, err
			}

			removed[entry.Signature] = true
			removedEntries = append(removedEntries, entry)
		}
	}

	return removedEntries, nil
}

func (c *derivativeCache) remove(ctx context.Context, entry cacherepositories.CachedDerivativeModel) error {
	key := entry.Key()

	storage, err := c.storageOf(key)
	if err != nil {
		return err
	}

	if err := storage.Delete(ctx, key); err != nil {
		return err
	}

	err = c.derivativesRepository.DeleteCachedDerivativeInfo(ctx, entry.Signature)
	if err != nil && err != cacherepositories.ErrCachedDerivativeNotFound {
		return err
	}

	return nil
}

func (c *derivativeCache) storageOf(key cachekey.Key) (cacherepositories.DerivativesStorage, error) {
	storage, found := c.resolvers[key.Resolver]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResolver, key.Resolver)
	}

	return storage, nil
}
