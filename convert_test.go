package pim_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lleo/go-pim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap(t *testing.T) {
	m := pim.New[string, int]().Set("a", 1).Set("b", 2)
	native := pim.ToMap(m)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, native)
}

func TestToSlice(t *testing.T) {
	m := pim.New[string, int]().Set("a", 1)
	entries := pim.ToSlice(m)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, 1, entries[0].Val)
}

func TestUnwrapDeepStructure(t *testing.T) {
	inner := pim.New[string, any]().Set("c", 3)
	root := pim.New[string, any]().
		Set("a", any(1)).
		Set("b", any(inner)).
		Set("list", any([]any{1, pim.New[string, any]().Set("x", 9)}))

	got := pim.Unwrap(root)
	want := map[string]any{
		"a":    1,
		"b":    map[string]any{"c": 3},
		"list": []any{1, map[string]any{"x": 9}},
	}

	// go-cmp gives a readable diff on mismatch for these deeply nested,
	// order-sensitive native structures, where testify's ObjectsAreEqual
	// would just report "not equal" without pointing at which branch.
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Unwrap mismatch (-want +got):\n%s", diff)
	}
}
