package cacherepositories

import (
	"context"
	"time"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

type CachedDerivativeModel struct {
	Signature string `json:"signature" bson:"signature"`
	Resolver  string `json:"resolver" bson:"resolver"`
	Filter    string `json:"filter" bson:"filter"`

	SourcePath  string `json:"sourcePath" bson:"sourcePath"`
	RuntimePath string `json:"runtimePath" bson:"runtimePath"`

	MimeType  string    `json:"mimeType" bson:"mimeType"`
	Size      int64     `json:"size" bson:"size"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// NewCachedDerivativeModel describes the derivative stored under key.
func NewCachedDerivativeModel(key cachekey.Key, derivative binary.Binary) CachedDerivativeModel {
	return CachedDerivativeModel{
		Signature:   key.Signature,
		Resolver:    key.Resolver,
		Filter:      key.Filter,
		SourcePath:  key.Path,
		RuntimePath: key.RuntimePath,
		MimeType:    derivative.MimeType,
		Size:        derivative.Size(),
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (m CachedDerivativeModel) Key() cachekey.Key {
	return cachekey.Key{
		Path:        m.SourcePath,
		RuntimePath: m.RuntimePath,
		Filter:      m.Filter,
		Resolver:    m.Resolver,
		Signature:   m.Signature,
	}
}

type InvalidationModel struct {
	InvalidationDate time.Time `json:"invalidationDate" bson:"invalidationDate"`

	RequestedPaths         []string                `json:"requestedPaths" bson:"requestedPaths"`
	RequestedFilters       []string                `json:"requestedFilters" bson:"requestedFilters"`
	InvalidatedDerivatives []CachedDerivativeModel `json:"invalidatedDerivatives" bson:"invalidatedDerivatives"`
	InvalidationError      *string                 `json:"invalidationError,omitempty" bson:"invalidationError,omitempty"`
}

type CachedDerivativesRepository interface {
	CreateCachedDerivativeInfo(ctx context.Context, info CachedDerivativeModel) error
	DeleteCachedDerivativeInfo(ctx context.Context, signature string) error
	GetCachedDerivativeInfo(ctx context.Context, signature string) (CachedDerivativeModel, error)

	// FindCachedDerivatives returns every entry whose source path starts with
	// pathPrefix and, when filters is not empty, whose filter is one of them.
	FindCachedDerivatives(ctx context.Context, pathPrefix string, filters []string) ([]CachedDerivativeModel, error)
}

type InvalidationsRepository interface {
	CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error
	GetLatestInvalidation(ctx context.Context) (InvalidationModel, error)
}

// DerivativesStorage is the backend of a single resolver.
type DerivativesStorage interface {
	Save(ctx context.Context, key cachekey.Key, derivative binary.Binary) error
	Exists(ctx context.Context, key cachekey.Key) (bool, error)
	Delete(ctx context.Context, key cachekey.Key) error
	Address(key cachekey.Key) string
}
