package cacherepositories

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

type WebPathStorageConfig struct {
	WebRoot     string
	CachePrefix string
	BaseURL     string
}

// webPathStorage keeps derivatives as files under the web root, so they can
// be served directly by the web server.
// Structure: {webRoot}/{cachePrefix}/{filter}/{runtimePath}
type webPathStorage struct {
	config WebPathStorageConfig
}

var _ DerivativesStorage = (*webPathStorage)(nil)

func NewWebPathStorage(config WebPathStorageConfig) (DerivativesStorage, error) {
	if config.CachePrefix == "" {
		config.CachePrefix = "media/cache"
	}

	root := filepath.Join(config.WebRoot, filepath.FromSlash(config.CachePrefix))
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &webPathStorage{config}, nil
}

func (s *webPathStorage) Save(ctx context.Context, key cachekey.Key, derivative binary.Binary) error {
	filePath := s.buildFilePath(key)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}

	tmpPath := filePath + ".tmp"
	if err := os.WriteFile(tmpPath, derivative.Content, 0644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

func (s *webPathStorage) Exists(ctx context.Context, key cachekey.Key) (bool, error) {
	_, err := os.Stat(s.buildFilePath(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (s *webPathStorage) Delete(ctx context.Context, key cachekey.Key) error {
	err := os.Remove(s.buildFilePath(key))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (s *webPathStorage) Address(key cachekey.Key) string {
	base := strings.TrimSuffix(s.config.BaseURL, "/")
	return base + "/" + escapeObjectPath(path.Join(s.config.CachePrefix, key.Filter, key.RuntimePath))
}

func (s *webPathStorage) buildFilePath(key cachekey.Key) string {
	return filepath.Join(
		s.config.WebRoot,
		filepath.FromSlash(s.config.CachePrefix),
		key.Filter,
		filepath.FromSlash(key.RuntimePath),
	)
}
