package kv

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var boltBucket = []byte("pathpradarshak")

// BoltStore is the Store backed by a bbolt file. bbolt allows one writer
// at a time, so Atomic maps directly onto a write transaction.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens or creates the bbolt file at path. It gives up after
// timeout if another process holds the file lock.
func OpenBolt(path string, timeout time.Duration) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) view(fn func(r *boltRepository) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltRepository{b: tx.Bucket(boltBucket)})
	})
}

func (s *BoltStore) update(fn func(r *boltRepository) error) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltRepository{b: tx.Bucket(boltBucket)})
	})
}

func (s *BoltStore) Get(ctx context.Context, key string) (value []byte, err error) {
	err = s.view(func(r *boltRepository) error {
		value, err = r.Get(ctx, key)
		return err
	})
	return value, err
}

func (s *BoltStore) Set(ctx context.Context, key string, value []byte) error {
	return s.update(func(r *boltRepository) error { return r.Set(ctx, key, value) })
}

func (s *BoltStore) Delete(ctx context.Context, key string) error {
	return s.update(func(r *boltRepository) error { return r.Delete(ctx, key) })
}

func (s *BoltStore) Clear(ctx context.Context) error {
	return s.update(func(r *boltRepository) error { return r.Clear(ctx) })
}

func (s *BoltStore) List(ctx context.Context) (result map[string][]byte, err error) {
	err = s.view(func(r *boltRepository) error {
		result, err = r.List(ctx)
		return err
	})
	return result, err
}

func (s *BoltStore) Atomic(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.update(func(r *boltRepository) error { return fn(ctx, r) })
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// boltRepository works on one bucket inside an open transaction. Values
// handed out are copies because bbolt memory is only valid inside the tx.
type boltRepository struct {
	b *bbolt.Bucket
}

func (r *boltRepository) Get(_ context.Context, key string) ([]byte, error) {
	v := r.b.Get([]byte(key))
	if v == nil {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (r *boltRepository) Set(_ context.Context, key string, value []byte) error {
	if err := r.b.Put([]byte(key), bytes.Clone(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *boltRepository) Delete(_ context.Context, key string) error {
	if err := r.b.Delete([]byte(key)); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *boltRepository) Clear(ctx context.Context) error {
	var keys [][]byte
	if err := r.b.ForEach(func(k, _ []byte) error {
		keys = append(keys, bytes.Clone(k))
		return nil
	}); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	for _, k := range keys {
		if err := r.Delete(ctx, string(k)); err != nil {
			return err
		}
	}
	return nil
}

func (r *boltRepository) List(_ context.Context) (map[string][]byte, error) {
	result := make(map[string][]byte)
	err := r.b.ForEach(func(k, v []byte) error {
		result[string(k)] = bytes.Clone(v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	return result, nil
}
