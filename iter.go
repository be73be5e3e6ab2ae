package pim

// ForEach walks the map depth-first, pre-order over the trie, invoking fn
// for each (key, value) pair. Iteration order is unspecified but stable
// for the lifetime of this map instance: re-iterating the same, unmodified
// Map yields the same sequence, since nothing about the trie shape changes
// between calls.
//
// fn returning false halts iteration early; ForEach itself returns false
// in that case, true if every entry was visited.
func (m *Map[K, V]) ForEach(fn func(key K, val V) bool) bool {
	if m.root == nil {
		return true
	}
	return m.root.iterate(fn)
}

// Reduce folds fn over every (key, value) pair, starting from init. fn
// returning ok=false halts the fold early, at which point Reduce returns
// the accumulator that halting call returned.
func Reduce[K, V, A any](m *Map[K, V], init A, fn func(acc A, key K, val V) (A, bool)) A {
	acc := init
	m.ForEach(func(k K, v V) bool {
		var ok bool
		acc, ok = fn(acc, k, v)
		return ok
	})
	return acc
}

// Keys returns every key in the map, in the same order ForEach would
// visit them.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	m.ForEach(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// Values returns every value in the map, in the same order ForEach would
// visit them.
func (m *Map[K, V]) Values() []V {
	vals := make([]V, 0, m.size)
	m.ForEach(func(_ K, v V) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// Entries returns every (key, value) pair in the map, in the same order
// ForEach would visit them.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	es := make([]Entry[K, V], 0, m.size)
	m.ForEach(func(k K, v V) bool {
		es = append(es, Entry[K, V]{Key: k, Val: v})
		return true
	})
	return es
}

// MapValues returns a new Map holding fn(k, v) for every (k, v) in m,
// built through an internal transient so the whole transformation costs
// one clone-to-root instead of one clone per entry.
func MapValues[K, V, V2 any](m *Map[K, V], fn func(key K, val V) V2) *Map[K, V2] {
	out := NewHasher[K, V2](m.hasher)
	return out.WithMutations(func(mut *Map[K, V2]) *Map[K, V2] {
		m.ForEach(func(k K, v V) bool {
			mut = mut.Set(k, fn(k, v))
			return true
		})
		return mut
	})
}

// FilterEntries returns a new Map holding only the entries for which
// keep returns true, built through an internal transient so filtering
// costs one clone-to-root rather than one per surviving entry.
func FilterEntries[K, V any](m *Map[K, V], keep func(key K, val V) bool) *Map[K, V] {
	out := New[K, V]()
	out.hasher = m.hasher
	return out.WithMutations(func(mut *Map[K, V]) *Map[K, V] {
		m.ForEach(func(k K, v V) bool {
			if keep(k, v) {
				mut = mut.Set(k, v)
			}
			return true
		})
		return mut
	})
}

// Any reports whether fn returns true for at least one entry, stopping at
// the first match.
func (m *Map[K, V]) Any(fn func(key K, val V) bool) bool {
	found := false
	m.ForEach(func(k K, v V) bool {
		if fn(k, v) {
			found = true
			return false
		}
		return true
	})
	return found
}

// All reports whether fn returns true for every entry, stopping at the
// first miss.
func (m *Map[K, V]) All(fn func(key K, val V) bool) bool {
	all := true
	m.ForEach(func(k K, v V) bool {
		if !fn(k, v) {
			all = false
			return false
		}
		return true
	})
	return all
}
