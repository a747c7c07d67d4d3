package dbconnections

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CacheDBTestingConnection is a production connection bound to a throwaway
// database that is dropped when the test ends.
type CacheDBTestingConnection struct {
	*CacheDBProductionConnection
}

var _ CacheDBConnection = (*CacheDBTestingConnection)(nil)

// NewCacheDBTestingConnection skips the test in short mode or when
// IMFILTER_MONGO_CONNECTION_STRING is not set.
func NewCacheDBTestingConnection(t *testing.T) *CacheDBTestingConnection {
	t.Helper()

	connectionString := os.Getenv("IMFILTER_MONGO_CONNECTION_STRING")
	if testing.Short() || connectionString == "" {
		t.Skip("skipping mongo integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := NewCacheDBProductionConnection(ctx, CacheDBConfig{
		ConnectionString: connectionString,
		Database:         "imfilter-test-" + uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("cannot connect to mongodb: %v", err)
	}

	testingConn := &CacheDBTestingConnection{conn.(*CacheDBProductionConnection)}
	if err := testingConn.client.Ping(ctx, readpref.Primary()); err != nil {
		t.Fatalf("mongodb is not reachable: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		if err := testingConn.client.Database(testingConn.config.Database).Drop(ctx); err != nil {
			t.Errorf("cannot drop test database %s: %v", testingConn.config.Database, err)
		}
		testingConn.Disconnect(ctx)
	})

	return testingConn
}
