package cacherepositories

import (
	"context"
	"sync"

	"github.com/thebartekbanach/imfilter/pkg/binary"
	"github.com/thebartekbanach/imfilter/pkg/cachekey"
)

// MemoryStorage keeps derivatives in process memory.
type MemoryStorage struct {
	name        string
	derivatives map[string]binary.Binary
	lock        sync.RWMutex
}

var _ DerivativesStorage = (*MemoryStorage)(nil)

func NewMemoryStorage(name string) *MemoryStorage {
	return &MemoryStorage{
		name:        name,
		derivatives: make(map[string]binary.Binary),
	}
}

func (s *MemoryStorage) Save(ctx context.Context, key cachekey.Key, derivative binary.Binary) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.derivatives[key.Signature] = derivative
	return nil
}

func (s *MemoryStorage) Exists(ctx context.Context, key cachekey.Key) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, found := s.derivatives[key.Signature]
	return found, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, key cachekey.Key) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	delete(s.derivatives, key.Signature)
	return nil
}

func (s *MemoryStorage) Address(key cachekey.Key) string {
	return "memory://" + s.name + "/" + escapeObjectPath(key.Filter+"/"+key.RuntimePath)
}

// Get returns the stored derivative of key.
func (s *MemoryStorage) Get(key cachekey.Key) (binary.Binary, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	derivative, found := s.derivatives[key.Signature]
	return derivative, found
}

func (s *MemoryStorage) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.derivatives)
}
