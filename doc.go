/*
Package pim implements a persistent, immutable associative map backed by a
Hash Array Mapped Trie (HAMT). Every mutating-looking operation returns a new
logical Map while sharing the bulk of its internal structure with its
predecessor.

The 32 bits of a key's hash are consumed 5 bits at a time as the trie is
descended: shard(hash, 0), shard(hash, 5), ... shard(hash, 30). Seven levels
are available this way; two distinct keys whose full 32-bit hashes are equal
cannot be separated by any level, so wherever they meet they are placed
together in a hashCollisionNode and distinguished by linear search.

A Map can be turned into a transient with AsMutable for efficient bulk
construction: the transient is tagged with an owner token, and any node
stamped with that same token may be edited in place rather than cloned.
AsImmutable seals the transient back into an ordinary persistent Map.
*/
package pim
