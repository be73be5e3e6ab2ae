package pim

import (
	"math"
	"reflect"
)

// ValueObject is the hook a user type may implement to opt into value
// semantics for equality and hashing. The core consults it whenever a key
// (or a value, for the "is" no-op check on Set) of that type is compared
// or hashed.
type ValueObject interface {
	Equals(other interface{}) bool
	HashCode() uint32
}

// Hasher is the equality/hash protocol a Map is parametrized over. The
// default implementation, DefaultHasher, defers to Is and HashCode below.
// A caller with a cheaper or more specific notion of equality for K (e.g.
// case-insensitive strings) can supply its own Hasher via NewHasher.
type Hasher[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

// DefaultHasher boxes K into interface{} and defers to the package-level
// Is/HashCode protocol. It is the Hasher used by New when no explicit one
// is supplied.
type DefaultHasher[K any] struct{}

func (DefaultHasher[K]) Hash(key K) uint32 { return HashCode(key) }
func (DefaultHasher[K]) Equal(a, b K) bool { return Is(a, b) }

// Is implements the map's equality protocol. It is
// reflexive, symmetric, and transitive; it treats +0 and -0 as equal (the
// language's own float equality already does this), treats NaN as equal to
// NaN (which the language's own float equality does not), and defers to
// the ValueObject hook when both operands implement it.
func Is(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if va, ok := a.(ValueObject); ok {
		if _, ok2 := b.(ValueObject); ok2 {
			return va.Equals(b)
		}
	}

	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(x) && math.IsNaN(y) {
			return true
		}
		return x == y
	case float32:
		y, ok := b.(float32)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) && math.IsNaN(float64(y)) {
			return true
		}
		return x == y
	}

	return reflect.DeepEqual(a, b)
}

// HashCode implements the map's hash protocol. It is
// deterministic per process and agrees with Is: any two inputs Is considers
// equal hash identically.
func HashCode(v interface{}) uint32 {
	if v == nil {
		return hashNilSentinel
	}

	if vo, ok := v.(ValueObject); ok {
		return vo.HashCode()
	}

	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return hashString(x)
	case int:
		return mix64(uint64(x))
	case int8:
		return mix64(uint64(x))
	case int16:
		return mix64(uint64(x))
	case int32:
		return mix64(uint64(uint32(x)))
	case int64:
		return mix64(uint64(x))
	case uint:
		return mix64(uint64(x))
	case uint8:
		return mix64(uint64(x))
	case uint16:
		return mix64(uint64(x))
	case uint32:
		return mix64(uint64(x))
	case uint64:
		return mix64(x)
	case float32:
		return mix64(uint64(canonicalFloat32Bits(x)))
	case float64:
		return mix64(canonicalFloat64Bits(x))
	case uintptr:
		return mix64(uint64(x))
	case complex64:
		return mix64(uint64(math.Float32bits(real(x)))) ^ mix64(uint64(math.Float32bits(imag(x))))
	case complex128:
		return mix64(math.Float64bits(real(x))) ^ mix64(math.Float64bits(imag(x)))
	}

	return reflectHash(v)
}

const (
	hashNilSentinel       uint32 = 0x42108421
	hashUndefinedSentinel uint32 = 0x1337c0de
)

// hashString mixes a string's bytes one at a time.
func hashString(s string) uint32 {
	var h uint32 = 2166136261 // FNV-1a offset basis
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619 // FNV-1a prime
	}
	return h
}

// canonicalFloat64Bits collapses every bit pattern Is treats as equal to
// a single representative before mixing: all NaN payloads map to one fixed
// pattern, and -0 maps to +0's pattern, so that Is(a, b) still implies
// HashCode(a) == HashCode(b) for float64.
func canonicalFloat64Bits(x float64) uint64 {
	if math.IsNaN(x) {
		return canonicalNaNBits64
	}
	if x == 0 {
		return 0
	}
	return math.Float64bits(x)
}

// canonicalFloat32Bits is canonicalFloat64Bits for float32.
func canonicalFloat32Bits(x float32) uint32 {
	if math.IsNaN(float64(x)) {
		return canonicalNaNBits32
	}
	if x == 0 {
		return 0
	}
	return math.Float32bits(x)
}

const (
	canonicalNaNBits64 uint64 = 0x7ff8000000000001
	canonicalNaNBits32 uint32 = 0x7fc00001
)

// mix64 is the fixed bit-mixing function used for every numeric primitive.
// It is the 64-bit finalizer (fmix64) from MurmurHash3, truncated to 32
// bits.
func mix64(x uint64) uint32 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return uint32(x)
}

// reflectHash handles the two cases the switch above doesn't cover:
// reference types (pointer/map/chan/func/slice), which get a cached
// per-identity integer via identityHash, and plain comparable aggregates
// (structs, arrays) without a ValueObject hook, which get a deterministic
// structural hash consistent with Is's reflect.DeepEqual fallback.
func reflectHash(v interface{}) uint32 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return hashNilSentinel
		}
		return identityHash(rv.Pointer())
	case reflect.Slice:
		if rv.IsNil() {
			return hashNilSentinel
		}
		return identityHash(rv.Pointer())
	case reflect.Struct:
		var h uint32 = 2166136261
		for i := 0; i < rv.NumField(); i++ {
			if !rv.Field(i).CanInterface() {
				continue
			}
			h = h*16777619 ^ HashCode(rv.Field(i).Interface())
		}
		return h
	case reflect.Array:
		var h uint32 = 2166136261
		for i := 0; i < rv.Len(); i++ {
			h = h*16777619 ^ HashCode(rv.Index(i).Interface())
		}
		return h
	default:
		// Every other kind lands here, including defined types whose
		// underlying type is a bool, string or number (HashCode's type
		// switch matches only the predeclared types). All of them share
		// this one sentinel, the nil sentinel's sibling; Is still tells
		// such keys apart, so they are separated only by linear search.
		return hashUndefinedSentinel
	}
}
