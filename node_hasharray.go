package pim

import (
	"fmt"
	"strings"
)

// hashArrayMapNode holds a fixed 32-slot array of optional children, used
// once a bitmapIndexedNode's occupancy would exceed BitmapIndexedMax. It
// trades the bitmap's compactness for direct indexed access and cheaper
// single-slot updates.
type hashArrayMapNode[K, V any] struct {
	owner    *ownerToken
	shift    uint
	children [tableCapacity]node[K, V]
	count    uint
}

func upgradeToHashArrayMap[K, V any](owner *ownerToken, shift uint, ents []entry[K, V], extra entry[K, V]) *hashArrayMapNode[K, V] {
	ht := &hashArrayMapNode[K, V]{owner: owner, shift: shift}
	for _, e := range ents {
		ht.children[e.idx] = e.node
	}
	ht.children[extra.idx] = extra.node
	ht.count = uint(len(ents)) + 1
	return ht
}

func (n *hashArrayMapNode[K, V]) get(shift uint, hash uint32, key K, hasher Hasher[K], notSet V) (V, bool) {
	idx := shard(hash, n.shift)
	child := n.children[idx]
	if child == nil {
		return notSet, false
	}
	return child.get(n.shift+nBits, hash, key, hasher, notSet)
}

func (n *hashArrayMapNode[K, V]) clone(owner *ownerToken) *hashArrayMapNode[K, V] {
	nn := &hashArrayMapNode[K, V]{owner: owner, shift: n.shift, count: n.count}
	nn.children = n.children
	return nn
}

func (n *hashArrayMapNode[K, V]) target(owner *ownerToken) *hashArrayMapNode[K, V] {
	if ownedBy(n.owner, owner) {
		return n
	}
	return n.clone(owner)
}

func (n *hashArrayMapNode[K, V]) entries() []entry[K, V] {
	ents := make([]entry[K, V], 0, n.count)
	for i := uint(0); i < tableCapacity; i++ {
		if n.children[i] != nil {
			ents = append(ents, entry[K, V]{idx: i, node: n.children[i]})
		}
	}
	return ents
}

func (n *hashArrayMapNode[K, V]) update(owner *ownerToken, shift uint, hash uint32, key K, val V, remove bool, hasher Hasher[K], sizeDelta *int) node[K, V] {
	idx := shard(hash, n.shift)
	child := n.children[idx]

	if child == nil {
		if remove {
			return n
		}
		*sizeDelta++
		nn := n.target(owner)
		nn.children[idx] = newValueNode(owner, hash, key, val)
		nn.count++
		return nn
	}

	newChild := child.update(owner, n.shift+nBits, hash, key, val, remove, hasher, sizeDelta)

	if newChild == child {
		return n
	}

	nn := n.target(owner)

	if newChild == nil {
		nn.children[idx] = nil
		nn.count--

		if GradeNodes && nn.count <= BitmapIndexedMax-1 {
			return downgradeToBitmapIndexed(owner, nn.shift, nn.entries())
		}
		return nn
	}

	nn.children[idx] = newChild
	return nn
}

func downgradeToBitmapIndexed[K, V any](owner *ownerToken, shift uint, ents []entry[K, V]) *bitmapIndexedNode[K, V] {
	nt := &bitmapIndexedNode[K, V]{owner: owner, shift: shift, children: make([]node[K, V], len(ents))}
	for i, e := range ents {
		nt.bitmap |= uint32(1) << e.idx
		nt.children[i] = e.node
	}
	return nt
}

func (n *hashArrayMapNode[K, V]) iterate(yield func(key K, val V) bool) bool {
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if !c.iterate(yield) {
			return false
		}
	}
	return true
}

func (n *hashArrayMapNode[K, V]) String() string {
	strs := make([]string, 0, n.count)
	for i, c := range n.children {
		if c != nil {
			strs = append(strs, fmt.Sprintf("%d:%v", i, c))
		}
	}
	return fmt.Sprintf("hashArrayMapNode{shift:%d, count:%d, children:[%s]}", n.shift, n.count, strings.Join(strs, ","))
}
