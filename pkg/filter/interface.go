package filter

import (
	"context"
	"errors"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

// Config is a named filter set: which processor runs which operation with
// which base params.
type Config struct {
	Name       string                 `yaml:"-"`
	Processor  string                 `yaml:"processor"`
	Operation  string                 `yaml:"operation"`
	DataLoader string                 `yaml:"data_loader"`
	Params     map[string]interface{} `yaml:"params"`
}

type Registry interface {
	Has(name string) bool
	Get(name string) (Config, error)
	Names() []string
}

type Pipeline interface {
	Apply(ctx context.Context, source binary.Binary, filter string, params cachekey.RuntimeParameters) (binary.Binary, error)
}

var (
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrParamsRejected  = errors.New("filter params rejected")
	ErrTransformFailed = errors.New("image transformation failed")
)
