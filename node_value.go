package pim

import "fmt"

// valueNode is the unit leaf of the trie: a single (hash, key, value)
// triple.
type valueNode[K, V any] struct {
	owner *ownerToken
	hash  uint32
	key   K
	val   V
}

func newValueNode[K, V any](owner *ownerToken, hash uint32, key K, val V) *valueNode[K, V] {
	return &valueNode[K, V]{owner: owner, hash: hash, key: key, val: val}
}

func (n *valueNode[K, V]) get(shift uint, hash uint32, key K, hasher Hasher[K], notSet V) (V, bool) {
	if hasher.Equal(key, n.key) {
		return n.val, true
	}
	return notSet, false
}

func (n *valueNode[K, V]) update(owner *ownerToken, shift uint, hash uint32, key K, val V, remove bool, hasher Hasher[K], sizeDelta *int) node[K, V] {
	if hasher.Equal(key, n.key) {
		if remove {
			*sizeDelta--
			return nil
		}
		if Is(val, n.val) {
			return n // no-op: preserve reference equality
		}
		if ownedBy(n.owner, owner) {
			n.val = val
			return n
		}
		return newValueNode(owner, hash, key, val)
	}

	if remove {
		return n // key not present here, nothing to delete
	}

	*sizeDelta++

	if hash == n.hash {
		// Full 32-bit hash collision: no amount of further branching will
		// separate these two keys.
		return newHashCollisionNode(owner, hash, []keyVal[K, V]{
			{hash: n.hash, key: n.key, val: n.val},
			{hash: hash, key: key, val: val},
		})
	}

	return &arrayMapNode[K, V]{
		owner: owner,
		shift: shift,
		kvs: []keyVal[K, V]{
			{hash: n.hash, key: n.key, val: n.val},
			{hash: hash, key: key, val: val},
		},
	}
}

func (n *valueNode[K, V]) iterate(yield func(key K, val V) bool) bool {
	return yield(n.key, n.val)
}

func (n *valueNode[K, V]) String() string {
	return fmt.Sprintf("valueNode{hash:%#08x, key:%v, val:%v}", n.hash, n.key, n.val)
}
