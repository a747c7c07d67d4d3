package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/thebartekbanach/imfilter/pkg/filter"
	"gopkg.in/yaml.v3"
)

const (
	LoaderTypeFileSystem = "filesystem"
	LoaderTypeHTTP       = "http"
	LoaderTypeMinio      = "minio"

	ResolverTypeWebPath = "webpath"
	ResolverTypeMinio   = "minio"
	ResolverTypeMemory  = "memory"
)

// File is the filter configuration file: filter sets, the loaders reading
// their sources and the resolvers storing their derivatives.
type File struct {
	DefaultResolver string                    `yaml:"default_resolver"`
	DefaultLoader   string                    `yaml:"default_loader"`
	FilterSets      map[string]filter.Config  `yaml:"filter_sets"`
	Loaders         map[string]LoaderConfig   `yaml:"loaders"`
	Resolvers       map[string]ResolverConfig `yaml:"resolvers"`
}

type LoaderConfig struct {
	Type string `yaml:"type"`

	// filesystem
	DataRoots []string `yaml:"data_roots"`

	// http
	BaseURL        string   `yaml:"base_url"`
	AllowedDomains []string `yaml:"allowed_domains"`
	MaxSourceSize  int64    `yaml:"max_source_size"`
}

type ResolverConfig struct {
	Type string `yaml:"type"`

	// webpath
	WebRoot     string `yaml:"web_root"`
	CachePrefix string `yaml:"cache_prefix"`
	BaseURL     string `yaml:"base_url"`

	// minio
	PublicBaseURL string `yaml:"public_base_url"`
}

func Load(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}

	return Parse(content)
}

func Parse(content []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return File{}, err
	}

	file.applyDefaults()
	if err := file.validate(); err != nil {
		return File{}, err
	}

	return file, nil
}

// UsesType reports whether any loader or resolver is backed by the given type.
func (f File) UsesType(backendType string) bool {
	for _, loader := range f.Loaders {
		if loader.Type == backendType {
			return true
		}
	}

	for _, resolver := range f.Resolvers {
		if resolver.Type == backendType {
			return true
		}
	}

	return false
}

func (f *File) applyDefaults() {
	if f.DefaultResolver == "" {
		f.DefaultResolver = "default"
	}

	if f.DefaultLoader == "" {
		f.DefaultLoader = "default"
	}

	if len(f.Resolvers) == 0 {
		f.Resolvers = map[string]ResolverConfig{f.DefaultResolver: {Type: ResolverTypeMemory}}
	}
}

func (f *File) validate() error {
	if len(f.FilterSets) == 0 {
		return ErrNoFilterSets
	}

	for name, loader := range f.Loaders {
		switch loader.Type {
		case LoaderTypeFileSystem, LoaderTypeHTTP, LoaderTypeMinio:
		default:
			return fmt.Errorf("%w: loader %q has type %q", ErrUnknownLoaderType, name, loader.Type)
		}
	}

	for name, resolver := range f.Resolvers {
		switch resolver.Type {
		case ResolverTypeWebPath, ResolverTypeMinio, ResolverTypeMemory:
		default:
			return fmt.Errorf("%w: resolver %q has type %q", ErrUnknownResolverType, name, resolver.Type)
		}
	}

	if _, found := f.Resolvers[f.DefaultResolver]; !found {
		return fmt.Errorf("%w: %q", ErrDefaultResolverMissing, f.DefaultResolver)
	}

	for name, filterSet := range f.FilterSets {
		loader := filterSet.DataLoader
		if loader == "" {
			loader = f.DefaultLoader
		}

		if _, found := f.Loaders[loader]; !found {
			return fmt.Errorf("%w: filter %q uses loader %q", ErrLoaderMissing, name, loader)
		}
	}

	return nil
}

var (
	ErrNoFilterSets           = errors.New("at least one filter set must be configured")
	ErrUnknownLoaderType      = errors.New("unknown loader type")
	ErrUnknownResolverType    = errors.New("unknown resolver type")
	ErrDefaultResolverMissing = errors.New("default resolver is not configured")
	ErrLoaderMissing          = errors.New("loader is not configured")
)
