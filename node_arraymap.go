package pim

import (
	"fmt"
	"strings"
)

// arrayMapNode holds up to ArrayMapMax entries as a flat, unordered list,
// with no further branching by hash shard. It is the landing spot for the
// first handful of keys that collide at a given trie position, avoiding
// the cost of building out a full bitmap table for what might still turn
// out to be 2 or 3 entries.
type arrayMapNode[K, V any] struct {
	owner *ownerToken
	shift uint
	kvs   []keyVal[K, V]
}

func (n *arrayMapNode[K, V]) indexOf(key K, hasher Hasher[K]) int {
	for i := range n.kvs {
		if hasher.Equal(n.kvs[i].key, key) {
			return i
		}
	}
	return -1
}

func (n *arrayMapNode[K, V]) get(shift uint, hash uint32, key K, hasher Hasher[K], notSet V) (V, bool) {
	if i := n.indexOf(key, hasher); i >= 0 {
		return n.kvs[i].val, true
	}
	return notSet, false
}

func (n *arrayMapNode[K, V]) clone(owner *ownerToken) *arrayMapNode[K, V] {
	nn := &arrayMapNode[K, V]{owner: owner, shift: n.shift, kvs: make([]keyVal[K, V], len(n.kvs))}
	copy(nn.kvs, n.kvs)
	return nn
}

func (n *arrayMapNode[K, V]) target(owner *ownerToken) *arrayMapNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	return n.clone(owner)
}

func (n *arrayMapNode[K, V]) update(owner *ownerToken, shift uint, hash uint32, key K, val V, remove bool, hasher Hasher[K], sizeDelta *int) node[K, V] {
	i := n.indexOf(key, hasher)

	if remove {
		if i < 0 {
			return n
		}
		*sizeDelta--
		if len(n.kvs) == 1 {
			return nil
		}
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

	*sizeDelta++

	if GradeNodes && uint(len(n.kvs)+1) > ArrayMapMax {
		all := make([]keyVal[K, V], len(n.kvs)+1)
		copy(all, n.kvs)
		all[len(n.kvs)] = keyVal[K, V]{hash: hash, key: key, val: val}
		return buildFromEntries(owner, shift, all, hasher)
	}

	nn := n.target(owner)
	nn.kvs = append(nn.kvs, keyVal[K, V]{hash: hash, key: key, val: val})
	return nn
}

func (n *arrayMapNode[K, V]) iterate(yield func(key K, val V) bool) bool {
	for _, kv := range n.kvs {
		if !yield(kv.key, kv.val) {
			return false
		}
	}
	return true
}

func (n *arrayMapNode[K, V]) String() string {
	strs := make([]string, len(n.kvs))
	for i, kv := range n.kvs {
		strs[i] = fmt.Sprintf("{%v:%v}", kv.key, kv.val)
	}
	return fmt.Sprintf("arrayMapNode{shift:%d, kvs:[%s]}", n.shift, strings.Join(strs, ","))
}
