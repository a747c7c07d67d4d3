package derivative

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imfilter/pkg/cache/repositories"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	"github.com/thebartekbanach/imfilter/pkg/filter"
	"github.com/thebartekbanach/imfilter/pkg/loader"
)

type staticDataManager struct{}

func (staticDataManager) Find(ctx context.Context, filterName, path string) (binary.Binary, error) {
	if path != "photos/a.jpg" {
		return binary.Binary{}, loader.ErrSourceNotFound
	}

	return binary.New([]byte{0xff, 0xd8, 0xff}, "image/jpeg"), nil
}

type copyPipeline struct{}

func (copyPipeline) Apply(ctx context.Context, source binary.Binary, filterName string, params cachekey.RuntimeParameters) (binary.Binary, error) {
	return source, nil
}

func TestMetrics_CountsHitsMissesAndFailures(t *testing.T) {
	metrics, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("Cannot create metrics: %v", err)
	}

	derivativeCache := cache.NewDerivativeCache(
		cacherepositories.NewMemoryDerivativesRepository(),
		map[string]cacherepositories.DerivativesStorage{"default": cacherepositories.NewMemoryStorage("default")},
		nil,
	)
	registry := filter.NewRegistry(map[string]filter.Config{"thumbnail": {Processor: "vips", Operation: "thumbnail"}})
	service := NewService(Config{}, cachekey.NewBuilder("default"), registry, staticDataManager{}, copyPipeline{}, derivativeCache, metrics, nil)

	service.EnsureDerivative(context.Background(), "photos/a.jpg", "thumbnail", "")
	service.EnsureDerivative(context.Background(), "photos/a.jpg", "thumbnail", "")
	service.EnsureDerivative(context.Background(), "photos/a.jpg", "thumbnail", "")
	service.EnsureDerivative(context.Background(), "photos/missing.jpg", "thumbnail", "")

	if hits := testutil.ToFloat64(metrics.hits.WithLabelValues("thumbnail")); hits != 2 {
		t.Errorf("Expected 2 cache hits, got %v", hits)
	}

	if misses := testutil.ToFloat64(metrics.misses.WithLabelValues("thumbnail")); misses != 2 {
		t.Errorf("Expected 2 cache misses, got %v", misses)
	}

	if failures := testutil.ToFloat64(metrics.failures.WithLabelValues("thumbnail")); failures != 1 {
		t.Errorf("Expected 1 failure, got %v", failures)
	}
}

func TestMetrics_RegisteringTwiceFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	if _, err := NewMetrics(registry); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := NewMetrics(registry); err == nil {
		t.Errorf("Expected duplicate registration to fail")
	}
}

func TestFlightGroup_SpreadsKeysOverShards(t *testing.T) {
	group := &flightGroup{}
	used := map[interface{}]bool{}

	for _, signature := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		used[group.shardOf(signature)] = true
	}

	if len(used) < 2 {
		t.Errorf("Expected signatures to be spread over shards, all landed in one")
	}

	if group.shardOf("a") != group.shardOf("a") {
		t.Errorf("Expected the same signature to always map to the same shard")
	}
}
