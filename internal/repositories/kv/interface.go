// Package kv is the key-value layer every document of the app lives in.
// Values are opaque bytes; the docstore package decides what they mean.
package kv

import "context"

// Repository is a flat key-value namespace.
type Repository interface {
	// Get returns the value stored under key, or (nil, nil) when the key
	// is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or overwrites the value under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that also supports atomic read-modify-write.
type Store interface {
	Repository

	// Atomic runs fn against a transactional view of the store. Writes made
	// through the view become visible together when fn returns nil and are
	// discarded otherwise. Concurrent Atomic calls are serialized. fn must
	// only use the repository it is given; calling back into the Store
	// deadlocks.
	Atomic(ctx context.Context, fn func(ctx context.Context, r Repository) error) error

	Close() error
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*BoltStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
