package derivative

import (
	"errors"
	"fmt"

	"github.com/thebartekbanach/imfilter/pkg/cache"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/filter"
	"github.com/thebartekbanach/imfilter/pkg/loader"
)

// FilterApplicationError is returned when the pipeline could not apply a
// filter the registry knows about, or rejected the params it was given.
type FilterApplicationError struct {
	Filter string
	Path   string
	Err    error
}

func (e *FilterApplicationError) Error() string {
	return fmt.Sprintf("cannot apply filter %q to %q: %v", e.Filter, e.Path, e.Err)
}

func (e *FilterApplicationError) Unwrap() error {
	return e.Err
}

func (e *FilterApplicationError) Is(target error) bool {
	return target == ErrFilterApplicationFailed
}

var (
	ErrUnknownFilter     = filter.ErrUnknownFilter
	ErrSourceNotFound    = loader.ErrSourceNotFound
	ErrTransformFailed   = filter.ErrTransformFailed
	ErrStoreFailed       = cache.ErrStoreFailed
	ErrInvalidParameters = cachekey.ErrInvalidParameters

	ErrFilterApplicationFailed = errors.New("filter application failed")
	ErrCacheUnavailable        = errors.New("derivative cache unavailable")
	ErrSourceUnavailable       = errors.New("source image unavailable")
	ErrComputationPanicked     = errors.New("derivative computation panicked")
)
