package pim

// IsMap reports whether v is a Map[string, any], the keyed-collection
// shape the path operations (path.go) recurse into by calling Get/Set on
// it directly rather than treating it as an opaque value.
func IsMap(v any) bool {
	_, ok := v.(*Map[string, any])
	return ok
}

// IsCollection reports whether v is one of the three shapes path
// operations know how to recurse into: a Map, a plain record
// (map[string]any), or a plain ordered sequence ([]any).
func IsCollection(v any) bool {
	return isCollection(v)
}

// IsKeyed reports whether v is addressed by string key (a Map or a plain
// record) as opposed to by integer index (a plain sequence).
func IsKeyed(v any) bool {
	switch v.(type) {
	case *Map[string, any], map[string]any:
		return true
	default:
		return false
	}
}

// IsIndexed reports whether v is addressed by integer index.
func IsIndexed(v any) bool {
	_, ok := v.([]any)
	return ok
}
