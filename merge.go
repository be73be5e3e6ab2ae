package pim

// Merger resolves a key present during a merge: oldVal/hadOld describe
// what the destination map held before the merge touched key, newVal is
// what the current source holds. The default merger used by Merge simply
// takes the incoming value.
type Merger[K, V any] func(key K, oldVal, newVal V, hadOld bool) V

func takeIncoming[K, V any](_ K, _, newVal V, _ bool) V { return newVal }

// Merge applies each source's entries over the receiver, last source
// wins on key collisions, and returns the result. No recursion into
// values: nested maps are replaced wholesale, never merged themselves.
// If nothing in any source actually changes the receiver, Merge returns
// the receiver unchanged.
func (m *Map[K, V]) Merge(sources ...*Map[K, V]) *Map[K, V] {
	return m.MergeWith(takeIncoming[K, V], sources...)
}

// MergeWith is Merge with a caller-supplied conflict resolver in place of
// "take incoming".
func (m *Map[K, V]) MergeWith(merger Merger[K, V], sources ...*Map[K, V]) *Map[K, V] {
	mut := m.AsMutable()
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.ForEach(func(k K, v V) bool {
			old, hadOld := mut.Get(k)
			mut = mut.Set(k, merger(k, old, v, hadOld))
			return true
		})
	}
	if !mut.altered {
		return m
	}
	return mut.AsImmutable()
}

// MergeMap is Merge for a plain Go map source. It is a package-level
// function rather than a method because it needs K comparable (to range
// over a Go map), a tighter constraint than Map itself requires.
func MergeMap[K comparable, V any](m *Map[K, V], src map[K]V) *Map[K, V] {
	return MergeWithMap(m, takeIncoming[K, V], src)
}

// MergeWithMap is MergeMap with a caller-supplied conflict resolver.
func MergeWithMap[K comparable, V any](m *Map[K, V], merger Merger[K, V], src map[K]V) *Map[K, V] {
	mut := m.AsMutable()
	for k, v := range src {
		old, hadOld := mut.Get(k)
		mut = mut.Set(k, merger(k, old, v, hadOld))
	}
	if !mut.altered {
		return m
	}
	return mut.AsImmutable()
}
