package services

import (
	"sync"
	"testing"
	"time"

	"github.com/Roop3005/path-darshak/internal/docstore"
	"github.com/Roop3005/path-darshak/internal/repositories/kv"
)

var epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

// stepClock returns a clock that starts at epoch and moves one second
// forward on every call.
func stepClock() func() time.Time {
	var mu sync.Mutex
	t := epoch
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func frozenClock() func() time.Time {
	return func() time.Time { return epoch }
}

func newDocs(t *testing.T) (*docstore.Documents, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	return docstore.New(store), store
}

func ptr[T any](v T) *T { return &v }
