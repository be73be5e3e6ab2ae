package pim

// ToMap converts a Map into a plain Go map. K must be comparable since a
// Go map requires it; Map itself does not, which is why this is a
// package-level function rather than a method.
func ToMap[K comparable, V any](m *Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	m.ForEach(func(k K, v V) bool {
		out[k] = v
		return true
	})
	return out
}

// ToSlice converts a Map into a slice of entries, in ForEach order.
func ToSlice[K, V any](m *Map[K, V]) []Entry[K, V] {
	return m.Entries()
}

// Unwrap recursively converts a Map[string, any] value tree into plain Go
// maps and slices: every *Map[string, any] or map[string]any becomes a new
// map[string]any, every []any becomes a new []any with its elements
// unwrapped (the input is not modified), and anything else is returned
// as-is. It is the inverse of treating plain maps/slices as
// collections in the path operations (path.go), useful at the boundary
// when handing a value tree to code that doesn't know about Map.
func Unwrap(v any) any {
	switch t := v.(type) {
	case *Map[string, any]:
		out := make(map[string]any, t.Len())
		t.ForEach(func(k string, val any) bool {
			out[k] = Unwrap(val)
			return true
		})
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Unwrap(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Unwrap(val)
		}
		return out
	default:
		return v
	}
}
