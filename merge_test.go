package pim_test

import (
	"testing"

	"github.com/lleo/go-pim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeLastWins(t *testing.T) {
	a := pim.New[string, int]().Set("x", 1).Set("y", 2)
	b := pim.New[string, int]().Set("y", 20).Set("z", 3)

	merged := a.Merge(b)
	v, ok := merged.Get("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = merged.Get("y")
	require.True(t, ok)
	assert.Equal(t, 20, v)

	v, ok = merged.Get("z")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMergeNoEffectiveChangeIsNoOp(t *testing.T) {
	a := pim.New[string, int]().Set("x", 1)
	b := pim.New[string, int]().Set("x", 1)

	merged := a.Merge(b)
	assert.Same(t, a, merged)
}

func TestMergeWithCustomMerger(t *testing.T) {
	a := pim.New[string, int]().Set("x", 1)
	b := pim.New[string, int]().Set("x", 10)

	sum := func(key string, oldVal, newVal int, hadOld bool) int {
		if !hadOld {
			return newVal
		}
		return oldVal + newVal
	}
	merged := a.MergeWith(sum, b)
	v, _ := merged.Get("x")
	assert.Equal(t, 11, v)
}

func TestMergeMultipleSources(t *testing.T) {
	a := pim.New[string, int]()
	b := pim.New[string, int]().Set("a", 1)
	c := pim.New[string, int]().Set("b", 2)
	d := pim.New[string, int]().Set("a", 99)

	merged := a.Merge(b, c, d)
	va, _ := merged.Get("a")
	vb, _ := merged.Get("b")
	assert.Equal(t, 99, va)
	assert.Equal(t, 2, vb)
}

func TestMergeMap(t *testing.T) {
	a := pim.New[string, int]().Set("x", 1)
	merged := pim.MergeMap(a, map[string]int{"y": 2, "x": 5})
	vx, _ := merged.Get("x")
	vy, _ := merged.Get("y")
	assert.Equal(t, 5, vx)
	assert.Equal(t, 2, vy)
}

func TestMergeDoesNotRecurseIntoValues(t *testing.T) {
	inner1 := pim.New[string, int]().Set("k", 1)
	inner2 := pim.New[string, int]().Set("k", 2)

	a := pim.New[string, *pim.Map[string, int]]().Set("nested", inner1)
	b := pim.New[string, *pim.Map[string, int]]().Set("nested", inner2)

	merged := a.Merge(b)
	nested, ok := merged.Get("nested")
	require.True(t, ok)
	assert.Same(t, inner2, nested, "merge replaces nested values wholesale, never merges them")
}
