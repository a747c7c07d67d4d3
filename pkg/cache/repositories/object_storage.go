package cacherepositories

import (
	"bytes"
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	dbconnections "github.com/thebartekbanach/imfilter/pkg/connections"
)

type ObjectStorageConfig struct {
	// PublicBaseURL is the address the bucket is served under, eg. http://localhost:9000.
	PublicBaseURL string
}

type objectStorage struct {
	config ObjectStorageConfig
	conn   dbconnections.MinioBlockStorageConnection
}

var _ DerivativesStorage = (*objectStorage)(nil)

func NewObjectStorage(config ObjectStorageConfig, conn dbconnections.MinioBlockStorageConnection) DerivativesStorage {
	return &objectStorage{config, conn}
}

func (s *objectStorage) Save(ctx context.Context, key cachekey.Key, derivative binary.Binary) error {
	reader := bytes.NewReader(derivative.Content)
	return s.conn.PutObject(ctx, s.makeObjectName(key), derivative.Size(), derivative.MimeType, reader)
}

func (s *objectStorage) Exists(ctx context.Context, key cachekey.Key) (bool, error) {
	return s.conn.ObjectExists(ctx, s.makeObjectName(key))
}

func (s *objectStorage) Delete(ctx context.Context, key cachekey.Key) error {
	err := s.conn.DeleteObject(ctx, s.makeObjectName(key))
	if dbconnections.IsNotFound(err) {
		return nil
	}

	return err
}

func (s *objectStorage) Address(key cachekey.Key) string {
	base := strings.TrimSuffix(s.config.PublicBaseURL, "/")
	return base + "/" + url.PathEscape(s.conn.Bucket()) + "/" + escapeObjectPath(s.makeObjectName(key))
}

func (s *objectStorage) makeObjectName(key cachekey.Key) string {
	return path.Join(key.Filter, key.RuntimePath)
}

func escapeObjectPath(objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}
