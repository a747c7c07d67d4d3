package cacherepositories

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryDerivativesRepository struct {
	infos map[string]CachedDerivativeModel
	lock  sync.RWMutex
}

var _ CachedDerivativesRepository = (*memoryDerivativesRepository)(nil)

func NewMemoryDerivativesRepository() CachedDerivativesRepository {
	return &memoryDerivativesRepository{infos: make(map[string]CachedDerivativeModel)}
}

func (repo *memoryDerivativesRepository) CreateCachedDerivativeInfo(ctx context.Context, info CachedDerivativeModel) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, found := repo.infos[info.Signature]; found {
		return ErrCachedDerivativeAlreadyExists
	}

	repo.infos[info.Signature] = info
	return nil
}

func (repo *memoryDerivativesRepository) DeleteCachedDerivativeInfo(ctx context.Context, signature string) error {
	repo.lock.Lock()
	defer repo.lock.Unlock()

	if _, found := repo.infos[signature]; !found {
		return ErrCachedDerivativeNotFound
	}

	delete(repo.infos, signature)
	return nil
}

func (repo *memoryDerivativesRepository) GetCachedDerivativeInfo(ctx context.Context, signature string) (CachedDerivativeModel, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	info, found := repo.infos[signature]
	if !found {
		return CachedDerivativeModel{}, ErrCachedDerivativeNotFound
	}

	return info, nil
}

func (repo *memoryDerivativesRepository) FindCachedDerivatives(ctx context.Context, pathPrefix string, filters []string) ([]CachedDerivativeModel, error) {
	repo.lock.RLock()
	defer repo.lock.RUnlock()

	infos := []CachedDerivativeModel{}
	for _, info := range repo.infos {
		if !strings.HasPrefix(info.SourcePath, pathPrefix) {
			continue
		}

		if len(filters) > 0 && !contains(filters, info.Filter) {
			continue
		}

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Signature < infos[j].Signature
	})

	return infos, nil
}

type memoryInvalidationsRepository struct {
	invalidations []InvalidationModel
	lock          sync.RWMutex
}

var _ InvalidationsRepository = (*memoryInvalidationsRepository)(nil)

func NewMemoryInvalidationsRepository() InvalidationsRepository {
	return &memoryInvalidationsRepository{}
}

func (r *memoryInvalidationsRepository) CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error {
	if invalidation.InvalidationDate.IsZero() {
		return ErrInvalidationDateRequired
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.invalidations = append(r.invalidations, invalidation)
	return nil
}

func (r *memoryInvalidationsRepository) GetLatestInvalidation(ctx context.Context) (InvalidationModel, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if len(r.invalidations) == 0 {
		return InvalidationModel{}, ErrNoInvalidations
	}

	latest := r.invalidations[0]
	for _, invalidation := range r.invalidations[1:] {
		if !invalidation.InvalidationDate.Before(latest.InvalidationDate) {
			latest = invalidation
		}
	}

	return latest, nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}
