package cacherepositories

import (
	"context"
	"reflect"
	"testing"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
	dbconnections "github.com/thebartekbanach/imfilter/pkg/connections"
)

func createCachedDerivativeModel(t *testing.T, path, filter string) CachedDerivativeModel {
	key, err := cachekey.NewBuilder("default").Build(path, filter, nil, "")
	if err != nil {
		t.Fatalf("Cannot build cache key: %v", err)
	}

	return NewCachedDerivativeModel(key, binary.New([]byte{0xff, 0xd8, 0xff}, "image/jpeg"))
}

func signaturesOf(infos []CachedDerivativeModel) map[string]bool {
	signatures := map[string]bool{}
	for _, info := range infos {
		signatures[info.Signature] = true
	}

	return signatures
}

func testCachedDerivativesRepository(t *testing.T, newRepo func(t *testing.T) CachedDerivativesRepository) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("CreatesCachedDerivative", func(t *testing.T) {
		repo := newRepo(t)
		info := createCachedDerivativeModel(t, "photos/a.jpg", "thumbnail")

		if err := repo.CreateCachedDerivativeInfo(ctx, info); err != nil {
			t.Errorf("Error creating cached derivative info: %s", err)
		}

		infoFromDB, err := repo.GetCachedDerivativeInfo(ctx, info.Signature)
		if err != nil {
			t.Errorf("Error getting cached derivative info: %s", err)
		}

		if !reflect.DeepEqual(infoFromDB, info) {
			t.Errorf("Cached derivative info from DB does not match the created one: %v != %v", infoFromDB, info)
		}
	})

	t.Run("ReturnsErrorWhenCachedDerivativeAlreadyExists", func(t *testing.T) {
		repo := newRepo(t)
		info := createCachedDerivativeModel(t, "photos/a.jpg", "thumbnail")

		if err := repo.CreateCachedDerivativeInfo(ctx, info); err != nil {
			t.Errorf("Error creating cached derivative info: %s", err)
		}

		if err := repo.CreateCachedDerivativeInfo(ctx, info); err != ErrCachedDerivativeAlreadyExists {
			t.Errorf("Expected ErrCachedDerivativeAlreadyExists, got: %v", err)
		}
	})

	t.Run("DeletesCachedDerivative", func(t *testing.T) {
		repo := newRepo(t)
		info := createCachedDerivativeModel(t, "photos/a.jpg", "thumbnail")
		repo.CreateCachedDerivativeInfo(ctx, info)

		if err := repo.DeleteCachedDerivativeInfo(ctx, info.Signature); err != nil {
			t.Errorf("Error deleting cached derivative info: %s", err)
		}

		if _, err := repo.GetCachedDerivativeInfo(ctx, info.Signature); err != ErrCachedDerivativeNotFound {
			t.Errorf("Expected ErrCachedDerivativeNotFound after deletion, got: %v", err)
		}

		if err := repo.DeleteCachedDerivativeInfo(ctx, info.Signature); err != ErrCachedDerivativeNotFound {
			t.Errorf("Expected ErrCachedDerivativeNotFound when deleting twice, got: %v", err)
		}
	})

	t.Run("FindsCachedDerivativesByPathPrefixAndFilters", func(t *testing.T) {
		repo := newRepo(t)
		photoThumbnail := createCachedDerivativeModel(t, "photos/a.jpg", "thumbnail")
		photoBanner := createCachedDerivativeModel(t, "photos/a.jpg", "banner")
		avatarThumbnail := createCachedDerivativeModel(t, "avatars/b.jpg", "thumbnail")
		regexLookalike := createCachedDerivativeModel(t, "photosXa.jpg", "thumbnail")

		for _, info := range []CachedDerivativeModel{photoThumbnail, photoBanner, avatarThumbnail, regexLookalike} {
			if err := repo.CreateCachedDerivativeInfo(ctx, info); err != nil {
				t.Fatalf("Error creating cached derivative info: %s", err)
			}
		}

		byPrefix, err := repo.FindCachedDerivatives(ctx, "photos.", nil)
		if err != nil || len(byPrefix) != 0 {
			t.Errorf("Expected path prefix to be matched literally, got %v, %v", byPrefix, err)
		}

		byPrefix, _ = repo.FindCachedDerivatives(ctx, "photos/", nil)
		if !reflect.DeepEqual(signaturesOf(byPrefix), signaturesOf([]CachedDerivativeModel{photoThumbnail, photoBanner})) {
			t.Errorf("Unexpected entries found by path prefix: %v", byPrefix)
		}

		byFilter, _ := repo.FindCachedDerivatives(ctx, "", []string{"thumbnail"})
		if !reflect.DeepEqual(signaturesOf(byFilter), signaturesOf([]CachedDerivativeModel{photoThumbnail, avatarThumbnail, regexLookalike})) {
			t.Errorf("Unexpected entries found by filter: %v", byFilter)
		}

		byBoth, _ := repo.FindCachedDerivatives(ctx, "photos/", []string{"banner"})
		if len(byBoth) != 1 || byBoth[0].Signature != photoBanner.Signature {
			t.Errorf("Unexpected entries found by path prefix and filter: %v", byBoth)
		}
	})
}

func TestMemoryDerivativesRepository(t *testing.T) {
	testCachedDerivativesRepository(t, func(t *testing.T) CachedDerivativesRepository {
		return NewMemoryDerivativesRepository()
	})
}

func TestCachedDerivativesRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cachedDerivativesRepository integration tests")
	}

	testCachedDerivativesRepository(t, func(t *testing.T) CachedDerivativesRepository {
		return NewCachedDerivativesRepository(dbconnections.NewCacheDBTestingConnection(t))
	})
}
