package metadata

import (
	"context"
	"sync"
)

// MemoryRepository is a map-backed Repository for tests and for running the
// CLI without a database file.
type MemoryRepository struct {
	mu sync.Mutex
	m  map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{m: map[string][]byte{}}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.m[key]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = append([]byte{}, value...)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string, more ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, key)
	for _, k := range more {
		delete(r.m, k)
	}
	return nil
}

func (r *MemoryRepository) List(context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]byte, len(r.m))
	for k, v := range r.m {
		out[k] = append([]byte{}, v...)
	}
	return out, nil
}

func (r *MemoryRepository) Clear(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = map[string][]byte{}
	return nil
}
