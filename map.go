package pim

import "fmt"

// Map is the user-visible persistent associative map: it holds a root
// trie node, a size, and an optional owner token. A Map with a nil owner
// is immutable and safe to share across
// goroutines; a Map with a non-nil owner is a transient, safe to use from
// exactly one goroutine at a time, produced by AsMutable and sealed back
// into an immutable Map by AsImmutable.
type Map[K, V any] struct {
	root    node[K, V]
	size    int
	owner   *ownerToken
	sealed  bool
	altered bool
	hasher  Hasher[K]
}

// Entry is a single key/value pair, used by FromEntries and returned by
// the entry iterators in iter.go.
type Entry[K, V any] struct {
	Key K
	Val V
}

// New returns an empty Map using the default equality/hash protocol
// (Is/HashCode, see hash.go) for K.
func New[K, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// NewHasher returns an empty Map using a caller-supplied Hasher, for K
// types that want a cheaper or different notion of equality than the
// default protocol provides.
func NewHasher[K, V any](hasher Hasher[K]) *Map[K, V] {
	return &Map[K, V]{hasher: hasher}
}

// FromMap builds a Map from a plain Go map. Since a Go map already
// guarantees unique keys there is no last-wins ambiguity to resolve.
func FromMap[K comparable, V any](src map[K]V) *Map[K, V] {
	m := New[K, V]()
	return m.WithMutations(func(mut *Map[K, V]) *Map[K, V] {
		for k, v := range src {
			mut = mut.Set(k, v)
		}
		return mut
	})
}

// FromEntries builds a Map from an ordered slice of entries. Duplicate
// keys resolve last-wins.
func FromEntries[K, V any](entries []Entry[K, V]) *Map[K, V] {
	m := New[K, V]()
	return m.WithMutations(func(mut *Map[K, V]) *Map[K, V] {
		for _, e := range entries {
			mut = mut.Set(e.Key, e.Val)
		}
		return mut
	})
}

func (m *Map[K, V]) hasherOrDefault() Hasher[K] {
	if m.hasher != nil {
		return m.hasher
	}
	return DefaultHasher[K]{}
}

// apply commits a new root/size pair, honoring the façade's mutate-in-place
// vs clone-and-return split: a transient (non-nil owner) is rewritten in
// place and handed back to the caller, a persistent Map allocates and
// returns a sibling that shares every untouched node with the receiver.
func (m *Map[K, V]) apply(newRoot node[K, V], sizeDelta int) *Map[K, V] {
	if m.owner != nil {
		m.root = newRoot
		m.size += sizeDelta
		m.altered = true
		return m
	}
	return &Map[K, V]{root: newRoot, size: m.size + sizeDelta, hasher: m.hasher}
}

// Len returns the number of entries reachable from root, maintained
// incrementally rather than recomputed.
func (m *Map[K, V]) Len() int { return m.size }

// IsEmpty reports whether the map holds zero entries.
func (m *Map[K, V]) IsEmpty() bool { return m.size == 0 }

// Get retrieves the value stored for key. The returned bool reports
// whether the key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m.root == nil {
		return zero, false
	}
	hasher := m.hasherOrDefault()
	return m.root.get(0, hasher.Hash(key), key, hasher, zero)
}

// GetOr retrieves the value for key, or notSet if key is absent.
func (m *Map[K, V]) GetOr(key K, notSet V) V {
	if v, ok := m.Get(key); ok {
		return v
	}
	return notSet
}

// ContainsKey reports whether key is present in the map.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a Map with key bound to val. If key already maps to a value
// Is-equal to val, Set is a no-op and returns the receiver unchanged
// (reference identity preserved).
func (m *Map[K, V]) Set(key K, val V) *Map[K, V] {
	hasher := m.hasherOrDefault()
	hash := hasher.Hash(key)

	var delta int
	var newRoot node[K, V]

	if m.root == nil {
		newRoot = newValueNode(m.owner, hash, key, val)
		delta = 1
	} else {
		newRoot = m.root.update(m.owner, 0, hash, key, val, false, hasher, &delta)
		if newRoot == m.root && delta == 0 {
			return m
		}
	}

	return m.apply(newRoot, delta)
}

// Delete returns a Map with key removed. If key is absent, Delete is a
// no-op and returns the receiver unchanged.
func (m *Map[K, V]) Delete(key K) *Map[K, V] {
	if m.root == nil {
		return m
	}
	hasher := m.hasherOrDefault()
	hash := hasher.Hash(key)

	var zero V
	var delta int
	newRoot := m.root.update(m.owner, 0, hash, key, zero, true, hasher, &delta)
	if newRoot == m.root && delta == 0 {
		return m
	}
	return m.apply(newRoot, delta)
}

// UpdateValue reads the current value for key (or notSet if absent),
// passes it through fn, and writes the result back via Set. If fn's result
// is Is-equal to the value that went in, the write is elided and the
// receiver is returned unchanged.
func (m *Map[K, V]) UpdateValue(key K, notSet V, fn func(V) V) *Map[K, V] {
	cur := m.GetOr(key, notSet)
	next := fn(cur)
	if Is(next, cur) {
		return m
	}
	return m.Set(key, next)
}

// Pipe invokes fn with the receiver and returns whatever fn returns,
// enabling chains like
// pim.Pipe(m, func(m *Map[string,int]) int { return m.Len() }).
func Pipe[K, V, R any](m *Map[K, V], fn func(*Map[K, V]) R) R {
	return fn(m)
}

// Clear returns an empty Map. For a transient it clears in place and
// preserves the caller's owner token; for a persistent Map it returns a
// fresh, empty Map sharing the same Hasher.
func (m *Map[K, V]) Clear() *Map[K, V] {
	if m.owner != nil {
		m.root = nil
		m.size = 0
		m.altered = true
		return m
	}
	return &Map[K, V]{hasher: m.hasher}
}

// AsMutable returns a transient view of the map: a new owner token is
// allocated, and the returned Map shares its root with the receiver until
// the first write forces a clone. Calling AsMutable on an already-mutable
// (and not yet sealed) Map returns the receiver itself.
func (m *Map[K, V]) AsMutable() *Map[K, V] {
	if m.owner != nil && !m.sealed {
		return m
	}
	return &Map[K, V]{root: m.root, size: m.size, owner: newOwnerToken(), hasher: m.hasher}
}

// AsImmutable strips the owner token from the map (and thus from its
// root), sealing the transient back into an ordinary persistent Map. The
// same *Map[K,V] value is returned; the caller must treat the pre-call
// handle as spent.
func (m *Map[K, V]) AsImmutable() *Map[K, V] {
	if m.owner == nil {
		return m
	}
	m.owner = nil
	m.sealed = true
	return m
}

// WithMutations runs fn against a transient derived from the receiver and
// seals the result back into an immutable Map on every exit path,
// including a panic propagating out of fn. fn may mutate its argument in
// place and return it, or return an altogether different Map; either is
// sealed.
//
// Calling AsImmutable on the transient from inside fn is forbidden because
// WithMutations itself owns sealing the transient: doing so anyway causes
// WithMutations to panic with a MisuseError rather than silently
// double-seal.
func (m *Map[K, V]) WithMutations(fn func(*Map[K, V]) *Map[K, V]) *Map[K, V] {
	mut := m.AsMutable()
	defer func() {
		// If fn returned normally, mut is already sealed below (whether it
		// is itself the result or was discarded in favor of another Map).
		// If fn panicked, this is the only place left to release mut's
		// mutability before the panic keeps propagating.
		if mut.owner != nil {
			mut.AsImmutable()
		}
	}()

	result := fn(mut)
	if result == nil {
		result = mut
	}
	if mut.sealed {
		panic(newMisuseError("WithMutations", "callback sealed the transient via AsImmutable before returning"))
	}
	return result.AsImmutable()
}

// WasAltered reports whether at least one mutation has been applied to
// this transient since it was created by AsMutable.
func (m *Map[K, V]) WasAltered() bool { return m.altered }

// Equals reports whether m and other contain the same keys mapped to
// Is-equal values. Iteration order is irrelevant. The signature matches
// ValueObject (hash.go) so that a Map nested as a value inside another
// Map is compared by content, not by pointer, when the outer map's own
// operations call Is on it.
func (m *Map[K, V]) Equals(other interface{}) bool {
	om, ok := other.(*Map[K, V])
	if !ok {
		return false
	}
	if m == om {
		return true
	}
	if om == nil || m.size != om.size {
		return false
	}
	return m.ForEach(func(k K, v V) bool {
		ov, found := om.Get(k)
		return found && Is(v, ov)
	})
}

// HashCode combines every entry's key/value hash with an order-independent
// operation, so that Equals(m, n) implies m.HashCode() == n.HashCode()
// regardless of how each map was built.
func (m *Map[K, V]) HashCode() uint32 {
	var h uint32
	m.ForEach(func(k K, v V) bool {
		h += HashCode(k)*31 + HashCode(v)
		return true
	})
	return h
}

func (m *Map[K, V]) String() string {
	return fmt.Sprintf("Map{size:%d, owner:%v, root:%v}", m.size, m.owner, m.root)
}

// LongString renders the map header and, on its own line indented one step
// further, the root node's String form; nested nodes appear inline on that
// one line rather than indented per depth.
func (m *Map[K, V]) LongString(indent string) string {
	if m.root == nil {
		return indent + fmt.Sprintf("Map{size:%d, root:nil}", m.size)
	}
	return indent + fmt.Sprintf("Map{size:%d, owner:%v, root:\n%s%v\n%s}", m.size, m.owner, indent+"  ", m.root, indent)
}
