package kv

import (
	"bytes"
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps everything in a map. It backs the "memory" driver and
// most tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) locked(fn func(r mapRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(mapRepository(s.data))
}

func (s *MemoryStore) Get(ctx context.Context, key string) (value []byte, err error) {
	err = s.locked(func(r mapRepository) error {
		value, err = r.Get(ctx, key)
		return err
	})
	return value, err
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	return s.locked(func(r mapRepository) error { return r.Set(ctx, key, value) })
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	return s.locked(func(r mapRepository) error { return r.Delete(ctx, key) })
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	return s.locked(func(r mapRepository) error { return r.Clear(ctx) })
}

func (s *MemoryStore) List(ctx context.Context) (result map[string][]byte, err error) {
	err = s.locked(func(r mapRepository) error {
		result, err = r.List(ctx)
		return err
	})
	return result, err
}

// Atomic runs fn on a copy of the map and swaps it in only on success.
// Stored values are never mutated in place, so a shallow copy suffices.
func (s *MemoryStore) Atomic(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := maps.Clone(s.data)
	if err := fn(ctx, mapRepository(working)); err != nil {
		return err
	}
	s.data = working
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

type mapRepository map[string][]byte

func (m mapRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (m mapRepository) Set(_ context.Context, key string, value []byte) error {
	v := bytes.Clone(value)
	if v == nil {
		v = []byte{}
	}
	m[key] = v
	return nil
}

func (m mapRepository) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

func (m mapRepository) Clear(_ context.Context) error {
	clear(m)
	return nil
}

func (m mapRepository) List(_ context.Context) (map[string][]byte, error) {
	result := make(map[string][]byte, len(m))
	for k, v := range m {
		result[k] = bytes.Clone(v)
	}
	return result, nil
}
