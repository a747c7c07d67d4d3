package dbconnections

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// MinioBlockStorageTestingConnection owns a fresh bucket that is emptied and
// removed when the test ends.
type MinioBlockStorageTestingConnection struct {
	MinioBlockStorageProductionConnection
}

// NewMinioBlockStorageTestingConnection skips the test in short mode or when
// IMFILTER_TEST_MINIO_ENDPOINT is not set. Credentials default to the ones of
// the development docker-compose minio.
func NewMinioBlockStorageTestingConnection(t *testing.T) *MinioBlockStorageTestingConnection {
	t.Helper()

	endpoint := os.Getenv("IMFILTER_TEST_MINIO_ENDPOINT")
	if testing.Short() || endpoint == "" {
		t.Skip("skipping minio integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := NewMinioBlockStorageProductionConnection(ctx, MinioBlockStorageProductionConnectionConfig{
		Endpoint:  endpoint,
		AccessKey: envOrDefault("IMFILTER_TEST_MINIO_ACCESS_KEY", "minio"),
		SecretKey: envOrDefault("IMFILTER_TEST_MINIO_SECRET_KEY", "minio123"),
		Bucket:    "imfilter-test-" + uuid.NewString(),
		Location:  "us-east-1",
	})
	if err != nil {
		t.Fatalf("cannot connect to minio: %v", err)
	}

	testingConn := &MinioBlockStorageTestingConnection{conn}
	t.Cleanup(testingConn.removeBucket)

	return testingConn
}

func (c *MinioBlockStorageTestingConnection) removeBucket() {
	ctx := context.Background()
	objects := c.client.ListObjects(ctx, c.config.Bucket, minio.ListObjectsOptions{Recursive: true})
	for object := range objects {
		if object.Err == nil {
			c.client.RemoveObject(ctx, c.config.Bucket, object.Key, minio.RemoveObjectOptions{})
		}
	}

	c.client.RemoveBucket(ctx, c.config.Bucket)
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
