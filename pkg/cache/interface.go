package cache

import (
	"context"
	"errors"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

// DerivativeCache stores derivatives in the backend of the resolver named by
// their key.
type DerivativeCache interface {
	Exists(ctx context.Context, key cachekey.Key) (bool, error)
	Store(ctx context.Context, key cachekey.Key, derivative binary.Binary) error
	Resolve(ctx context.Context, key cachekey.Key) (string, error)
	Invalidate(ctx context.Context, paths, filters []string) ([]cacherepositories.CachedDerivativeModel, error)
}

type InvalidationService interface {
	GetLatestInvalidation(ctx context.Context) (cacherepositories.InvalidationModel, error)
	Invalidate(ctx context.Context, paths, filters []string) (cacherepositories.InvalidationModel, error)
}

var (
	ErrStoreFailed     = errors.New("failed to store derivative")
	ErrUnknownResolver = errors.New("unknown resolver")
)
