package cachekey

import "errors"

// RuntimeParameters override or extend the base configuration of a filter
// for a single request.
type RuntimeParameters map[string]interface{}

// Key identifies one cached derivative.
type Key struct {
	Path        string
	RuntimePath string
	Filter      string
	Resolver    string
	Signature   string
}

func (k Key) String() string {
	return k.Signature
}

type Builder interface {
	Build(path, filter string, params RuntimeParameters, resolver string) (Key, error)
	RuntimeHash(params RuntimeParameters) (string, error)
}

var (
	ErrInvalidParameters = errors.New("invalid runtime parameters")
	ErrInvalidPath       = errors.New("invalid source path")
)
