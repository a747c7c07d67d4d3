package loader

import (
	"context"
	"fmt"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/filter"
)

type manager struct {
	registry      filter.Registry
	loaders       map[string]Loader
	defaultLoader string
}

var _ DataManager = (*manager)(nil)

func NewManager(registry filter.Registry, loaders map[string]Loader, defaultLoader string) DataManager {
	return &manager{registry, loaders, defaultLoader}
}

func (m *manager) Find(ctx context.Context, filterName, path string) (binary.Binary, error) {
	config, err := m.registry.Get(filterName)
	if err != nil {
		return binary.Binary{}, err
	}

	loaderName := config.DataLoader
	if loaderName == "" {
		loaderName = m.defaultLoader
	}

	loader, found := m.loaders[loaderName]
	if !found {
		return binary.Binary{}, fmt.Errorf("%w: %q", ErrUnknownLoader, loaderName)
	}

	source, err := loader.Load(ctx, path)
	if err != nil {
		return binary.Binary{}, err
	}

	if source.MimeType == "" {
		source = binary.Sniff(source.Content)
	}

	if !source.IsImage() {
		return binary.Binary{}, fmt.Errorf("%w: %s has mime type %q", ErrNotAnImage, path, source.MimeType)
	}

	return source, nil
}
