package pim

import (
	"fmt"
	"strings"
)

// hashCollisionNode stores every entry that shares one full 32-bit hash
// value, resolved by linear search. It is the only variant that can exist
// past shift 30: once every shard of the hash has been consumed, two
// distinct keys can still collide, and no further branching can separate
// them.
type hashCollisionNode[K, V any] struct {
	owner *ownerToken
	hash  uint32
	kvs   []keyVal[K, V]
}

func newHashCollisionNode[K, V any](owner *ownerToken, hash uint32, kvs []keyVal[K, V]) *hashCollisionNode[K, V] {
	return &hashCollisionNode[K, V]{owner: owner, hash: hash, kvs: kvs}
}

func (n *hashCollisionNode[K, V]) indexOf(key K, hasher Hasher[K]) int {
	for i := range n.kvs {
		if hasher.Equal(n.kvs[i].key, key) {
			return i
		}
	}
	return -1
}

func (n *hashCollisionNode[K, V]) get(shift uint, hash uint32, key K, hasher Hasher[K], notSet V) (V, bool) {
	if i := n.indexOf(key, hasher); i >= 0 {
		return n.kvs[i].val, true
	}
	return notSet, false
}

func (n *hashCollisionNode[K, V]) clone(owner *ownerToken) *hashCollisionNode[K, V] {
	nn := &hashCollisionNode[K, V]{owner: owner, hash: n.hash, kvs: make([]keyVal[K, V], len(n.kvs))}
	copy(nn.kvs, n.kvs)
	return nn
}

func (n *hashCollisionNode[K, V]) target(owner *ownerToken) *hashCollisionNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	return n.clone(owner)
}

func (n *hashCollisionNode[K, V]) update(owner *ownerToken, shift uint, hash uint32, key K, val V, remove bool, hasher Hasher[K], sizeDelta *int) node[K, V] {
	i := n.indexOf(key, hasher)

	if remove {
		if i < 0 {
			return n
		}
		*sizeDelta--
		if len(n.kvs) == 2 {
			var kept keyVal[K, V]
			if i == 0 {
				kept = n.kvs[1]
			} else {
				kept = n.kvs[0]
			}
			return newValueNode(owner, kept.hash, kept.key, kept.val)
		}
		nn := n.target(owner)
		nn.kvs = append(nn.kvs[:i:i], nn.kvs[i+1:]...)
		return nn
	}

	if i >= 0 {
		if Is(val, n.kvs[i].val) {
			return n
		}
		nn := n.target(owner)
		nn.kvs[i] = keyVal[K, V]{hash: hash, key: key, val: val}
		return nn
	}

	// A key with a hash different from the bucket's arrives here whenever
	// an earlier insert grew this bucket at a shift below maxShift: the two
	// hashes share every shard up to that point but still diverge lower
	// down. Branch the two apart instead of merging the newcomer into a
	// bucket it doesn't belong in.
	if hash != n.hash {
		*sizeDelta++
		leaf := newValueNode(owner, hash, key, val)
		return splitCollisionBucket[K, V](owner, shift, n, n.hash, hash, leaf)
	}

	*sizeDelta++
	nn := n.target(owner)
	nn.kvs = append(nn.kvs, keyVal[K, V]{hash: hash, key: key, val: val})
	return nn
}

// splitCollisionBucket separates existing (every entry of which hashes to
// bucketHash) from leaf (which hashes to leafHash != bucketHash) by
// branching as a bitmapIndexedNode at shift. If the two hashes still share
// their shard at shift, it descends one level and tries again; this is
// guaranteed to terminate at or before maxShift, since bucketHash and
// leafHash differ somewhere in their 32 bits and every bit is covered by
// some shift in 0, nBits, ..., maxShift.
func splitCollisionBucket[K, V any](owner *ownerToken, shift uint, existing node[K, V], bucketHash, leafHash uint32, leaf node[K, V]) node[K, V] {
	existingIdx := shard(bucketHash, shift)
	leafIdx := shard(leafHash, shift)

	if existingIdx == leafIdx {
		bit := uint32(1) << existingIdx
		child := splitCollisionBucket[K, V](owner, shift+nBits, existing, bucketHash, leafHash, leaf)
		return &bitmapIndexedNode[K, V]{owner: owner, shift: shift, bitmap: bit, children: []node[K, V]{child}}
	}

	bitmap := uint32(1)<<existingIdx | uint32(1)<<leafIdx
	var children []node[K, V]
	if existingIdx < leafIdx {
		children = []node[K, V]{existing, leaf}
	} else {
		children = []node[K, V]{leaf, existing}
	}
	return &bitmapIndexedNode[K, V]{owner: owner, shift: shift, bitmap: bitmap, children: children}
}

func (n *hashCollisionNode[K, V]) iterate(yield func(key K, val V) bool) bool {
	for _, kv := range n.kvs {
		if !yield(kv.key, kv.val) {
			return false
		}
	}
	return true
}

func (n *hashCollisionNode[K, V]) String() string {
	strs := make([]string, len(n.kvs))
	for i, kv := range n.kvs {
		strs[i] = fmt.Sprintf("{%v:%v}", kv.key, kv.val)
	}
	return fmt.Sprintf("hashCollisionNode{hash:%#08x, kvs:[%s]}", n.hash, strings.Join(strs, ","))
}
