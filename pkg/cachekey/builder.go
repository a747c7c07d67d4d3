package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

const runtimePathPrefix = "rc"

type builder struct {
	defaultResolver string
}

var _ Builder = (*builder)(nil)

func NewBuilder(defaultResolver string) Builder {
	return &builder{defaultResolver}
}

func (b *builder) Build(path, filter string, params RuntimeParameters, resolver string) (Key, error) {
	if err := validatePath(path); err != nil {
		return Key{}, err
	}

	if resolver == "" {
		resolver = b.defaultResolver
	}

	runtimePath := path
	if len(params) > 0 {
		hash, err := b.RuntimeHash(params)
		if err != nil {
			return Key{}, err
		}

		runtimePath = runtimePathPrefix + "/" + hash + "/" + path
	}

	return Key{
		Path:        path,
		RuntimePath: runtimePath,
		Filter:      filter,
		Resolver:    resolver,
		Signature:   generateSignature(resolver, filter, runtimePath),
	}, nil
}

// RuntimeHash returns a short digest of params. encoding/json orders map keys
// at every nesting level, so parameter sets differing only in insertion
// order share a hash.
func (b *builder) RuntimeHash(params RuntimeParameters) (string, error) {
	canonical, err := json.Marshal(map[string]interface{}(params))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidParameters, err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])[:16], nil
}

// generateSignature length-prefixes every field, so no choice of names can
// make two different tuples hash the same input.
func generateSignature(resolver, filter, runtimePath string) string {
	signature := fmt.Sprintf("%d:%s|%d:%s|%d:%s", len(resolver), resolver, len(filter), filter, len(runtimePath), runtimePath)
	sum := sha256.Sum256([]byte(signature))
	return hex.EncodeToString(sum[:])
}

func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}

	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return ErrInvalidPath
		}
	}

	return nil
}
