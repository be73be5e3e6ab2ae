package pim

import "sync"

var (
	identityMu      sync.Mutex
	identityTable   = make(map[uintptr]uint32)
	identityCounter uint32
)

// identityHash assigns and permanently remembers a per-identity integer the
// first time a reference value (pointer, map, chan, func, slice backing
// array, unsafe pointer) is hashed, for reference types with no
// value-object hook to defer to. The table never evicts: a key that was
// hashed once while Set into a Map must still hash identically on every
// later Get for as long as that key is alive, and an eviction-capable
// cache cannot promise that once more distinct identities than its
// capacity have passed through it.
func identityHash(ptr uintptr) uint32 {
	identityMu.Lock()
	defer identityMu.Unlock()
	if h, ok := identityTable[ptr]; ok {
		return h
	}
	identityCounter++
	identityTable[ptr] = identityCounter
	return identityCounter
}
