package derivative

import (
	"context"
	"time"

	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

// Service makes sure filtered derivatives of source images exist in the cache
// and returns their public addresses.
type Service interface {
	EnsureDerivative(ctx context.Context, path, filter, resolver string) (string, error)
	EnsureDerivativeWithRuntimeFilters(ctx context.Context, path, filter string, params cachekey.RuntimeParameters, resolver string) (string, error)

	// URLOfDerivative resolves the address a derivative has or would have,
	// without computing it.
	URLOfDerivative(ctx context.Context, path, filter, resolver string) (string, error)
	URLOfDerivativeWithRuntimeFilters(ctx context.Context, path, filter string, params cachekey.RuntimeParameters, resolver string) (string, error)
}

type Config struct {
	// ComputeTimeout bounds a single derivative computation. Zero means no limit.
	ComputeTimeout time.Duration
}
