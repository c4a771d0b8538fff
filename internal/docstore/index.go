package docstore

// Index is a collection kept in storage order with O(1) lookup by key.
// Items whose key repeats an earlier one stay in the collection but are
// reachable by key only once the earlier item is removed.
type Index[K comparable, V any] struct {
	keyOf func(V) K
	items []V
	pos   map[K]int
}

func NewIndex[K comparable, V any](items []V, keyOf func(V) K) *Index[K, V] {
	idx := &Index[K, V]{keyOf: keyOf, items: items}
	idx.reindex()
	return idx
}

func (x *Index[K, V]) reindex() {
	x.pos = make(map[K]int, len(x.items))
	for i, v := range x.items {
		k := x.keyOf(v)
		if _, dup := x.pos[k]; !dup {
			x.pos[k] = i
		}
	}
}

func (x *Index[K, V]) Len() int {
	return len(x.items)
}

func (x *Index[K, V]) Has(k K) bool {
	_, ok := x.pos[k]
	return ok
}

func (x *Index[K, V]) Get(k K) (V, bool) {
	i, ok := x.pos[k]
	if !ok {
		var zero V
		return zero, false
	}
	return x.items[i], true
}

// Update calls fn on the stored item with key k. It reports whether the
// key was found. fn must not change the key.
func (x *Index[K, V]) Update(k K, fn func(v *V)) bool {
	i, ok := x.pos[k]
	if !ok {
		return false
	}
	fn(&x.items[i])
	return true
}

// UpdateAll calls fn on every stored item with key k, including the
// duplicates Update cannot reach, and returns how many it changed. fn must
// not change the key.
func (x *Index[K, V]) UpdateAll(k K, fn func(v *V)) int {
	n := 0
	for i := range x.items {
		if x.keyOf(x.items[i]) == k {
			fn(&x.items[i])
			n++
		}
	}
	return n
}

// Append adds v at the end unless its key is already present.
func (x *Index[K, V]) Append(v V) bool {
	k := x.keyOf(v)
	if x.Has(k) {
		return false
	}
	x.pos[k] = len(x.items)
	x.items = append(x.items, v)
	return true
}

// Remove deletes the item with key k, keeping the order of the rest.
func (x *Index[K, V]) Remove(k K) bool {
	i, ok := x.pos[k]
	if !ok {
		return false
	}
	x.items = append(x.items[:i:i], x.items[i+1:]...)
	x.reindex()
	return true
}

// Items returns the items in storage order. The slice is a copy.
func (x *Index[K, V]) Items() []V {
	out := make([]V, len(x.items))
	copy(out, x.items)
	return out
}
