package pim

import (
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Path operations recurse through nested collections reachable from a
// Map[string, any]: further Maps, plain Go maps (treated as records), and
// plain slices (treated as ordered sequences), addressed by a decimal
// string segment.

// GetIn retrieves the value at path, descending through any mix of Map,
// map[string]any, and []any along the way. The bool reports whether every
// segment resolved.
func GetIn(m *Map[string, any], path []string) (any, bool) {
	var cur any = m
	for _, key := range path {
		next, ok := stepInto(cur, key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// GetInOr is GetIn with a fallback for a path that does not fully resolve.
func GetInOr(m *Map[string, any], path []string, notSet any) any {
	v, ok := GetIn(m, path)
	if !ok {
		return notSet
	}
	return v
}

func stepInto(cur any, key string) (any, bool) {
	switch t := cur.(type) {
	case *Map[string, any]:
		return t.Get(key)
	case map[string]any:
		v, ok := t[key]
		return v, ok
	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(t) {
			return nil, false
		}
		return t[idx], true
	default:
		return nil, false
	}
}

// isCollection reports whether v is one of the three shapes path
// operations know how to recurse into.
func isCollection(v any) bool {
	switch v.(type) {
	case *Map[string, any], map[string]any, []any:
		return true
	default:
		return false
	}
}

// SetIn writes newVal at path, fabricating an empty Map for any missing
// intermediate segment, and returns the new root Map. It panics with an
// error wrapping a *PathError (errors.Cause returns it) if an intermediate
// segment names a non-collection value while the path has not been
// exhausted, surfaced as a panic since SetIn has no error return of its
// own to carry it in.
func SetIn(m *Map[string, any], path []string, newVal any) *Map[string, any] {
	if len(path) == 0 {
		return m
	}
	result, err := setInHelper(m, path, newVal, nil)
	if err != nil {
		panic(err)
	}
	return result.(*Map[string, any])
}

func setInHelper(cur any, path []string, newVal any, soFar []interface{}) (any, error) {
	if len(path) == 0 {
		return newVal, nil
	}
	key := path[0]
	nextSoFar := append(soFar, key)

	switch t := cur.(type) {
	case *Map[string, any]:
		child, _ := t.Get(key)
		merged, err := setInHelper(child, path[1:], newVal, nextSoFar)
		if err != nil {
			return nil, err
		}
		return t.Set(key, merged), nil

	case map[string]any:
		child := t[key]
		merged, err := setInHelper(child, path[1:], newVal, nextSoFar)
		if err != nil {
			return nil, err
		}
		nt := maps.Clone(t)
		nt[key] = merged
		return nt, nil

	case []any:
		idx, convErr := strconv.Atoi(key)
		if convErr != nil || idx < 0 || idx >= len(t) {
			return nil, newPathError(nextSoFar, len(soFar), cur)
		}
		ns := slices.Clone(t)
		merged, err := setInHelper(ns[idx], path[1:], newVal, nextSoFar)
		if err != nil {
			return nil, err
		}
		ns[idx] = merged
		return ns, nil

	case nil:
		return setInHelper(New[string, any](), path, newVal, soFar)

	default:
		return nil, newPathError(nextSoFar, len(soFar), cur)
	}
}

// UpdateIn reads the current value at path (or notSet if the path does not
// fully resolve), passes it through fn, and writes the result back with
// SetIn. If fn's result is Is-equal to the value read, UpdateIn returns m
// unchanged by reference without writing anything.
func UpdateIn(m *Map[string, any], path []string, notSet any, fn func(any) any) *Map[string, any] {
	cur := GetInOr(m, path, notSet)
	next := fn(cur)
	if Is(next, cur) {
		return m
	}
	return SetIn(m, path, next)
}

// DeleteIn removes the value at path. Absent intermediate segments make
// DeleteIn a no-op, returning m unchanged.
func DeleteIn(m *Map[string, any], path []string) *Map[string, any] {
	if len(path) == 0 {
		return m
	}
	merged, changed := deleteInHelper(m, path)
	if !changed {
		return m
	}
	return merged.(*Map[string, any])
}

func deleteInHelper(cur any, path []string) (any, bool) {
	key := path[0]

	switch t := cur.(type) {
	case *Map[string, any]:
		if len(path) == 1 {
			nm := t.Delete(key)
			return nm, nm != t
		}
		child, ok := t.Get(key)
		if !ok || !isCollection(child) {
			return t, false
		}
		merged, changed := deleteInHelper(child, path[1:])
		if !changed {
			return t, false
		}
		return t.Set(key, merged), true

	case map[string]any:
		if len(path) == 1 {
			if _, ok := t[key]; !ok {
				return t, false
			}
			nt := maps.Clone(t)
			delete(nt, key)
			return nt, true
		}
		child, ok := t[key]
		if !ok || !isCollection(child) {
			return t, false
		}
		merged, changed := deleteInHelper(child, path[1:])
		if !changed {
			return t, false
		}
		nt := maps.Clone(t)
		nt[key] = merged
		return nt, true

	case []any:
		idx, err := strconv.Atoi(key)
		if err != nil || idx < 0 || idx >= len(t) {
			return t, false
		}
		if len(path) == 1 {
			ns := slices.Delete(slices.Clone(t), idx, idx+1)
			return ns, true
		}
		if !isCollection(t[idx]) {
			return t, false
		}
		merged, changed := deleteInHelper(t[idx], path[1:])
		if !changed {
			return t, false
		}
		ns := slices.Clone(t)
		ns[idx] = merged
		return ns, true

	default:
		return cur, false
	}
}

// MergeIn merges src, a plain map[string]any, into the Map found at path,
// fabricating an empty Map at path if it is absent. Like the
// top-level Merge, it descends one level only: nested maps under src are
// substituted wholesale, never merged themselves.
func MergeIn(m *Map[string, any], path []string, src map[string]any) *Map[string, any] {
	cur := GetInOr(m, path, any(New[string, any]()))
	dst, ok := cur.(*Map[string, any])
	if !ok {
		dst = New[string, any]()
	}
	return SetIn(m, path, MergeMap(dst, src))
}
