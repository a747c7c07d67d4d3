package loader

import (
	"context"
	"errors"

	"github.com/thebartekbanach/imfilter/pkg/binary"
)

// Loader fetches raw source images by their logical path.
type Loader interface {
	Load(ctx context.Context, path string) (binary.Binary, error)
}

// DataManager finds the source image of a filter using the loader the
// filter is configured with.
type DataManager interface {
	Find(ctx context.Context, filter, path string) (binary.Binary, error)
}

var (
	ErrSourceNotFound   = errors.New("source image not found")
	ErrNotAnImage       = errors.New("source is not an image")
	ErrUnknownLoader    = errors.New("unknown data loader")
	ErrDomainNotAllowed = errors.New("source domain not allowed")
)
