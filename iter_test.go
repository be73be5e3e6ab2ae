package pim_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/lleo/go-pim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIntMap(n int) *pim.Map[int, int] {
	m := pim.New[int, int]()
	return m.WithMutations(func(mut *pim.Map[int, int]) *pim.Map[int, int] {
		for i := 0; i < n; i++ {
			mut = mut.Set(i, i*i)
		}
		return mut
	})
}

func TestForEachVisitsEveryEntry(t *testing.T) {
	m := buildIntMap(50)
	seen := make(map[int]int)
	complete := m.ForEach(func(k, v int) bool {
		seen[k] = v
		return true
	})
	assert.True(t, complete)
	require.Len(t, seen, 50)
	for i := 0; i < 50; i++ {
		assert.Equal(t, i*i, seen[i])
	}
}

func TestForEachStableAcrossRepeatedCalls(t *testing.T) {
	m := buildIntMap(50)
	var first, second []int
	m.ForEach(func(k, v int) bool { first = append(first, k); return true })
	m.ForEach(func(k, v int) bool { second = append(second, k); return true })
	assert.Equal(t, first, second)
}

func TestForEachEarlyTermination(t *testing.T) {
	m := buildIntMap(50)
	count := 0
	complete := m.ForEach(func(k, v int) bool {
		count++
		return count < 5
	})
	assert.False(t, complete)
	assert.Equal(t, 5, count)
}

func TestReduce(t *testing.T) {
	m := buildIntMap(10)
	sum := pim.Reduce(m, 0, func(acc, k, v int) (int, bool) {
		return acc + v, true
	})
	want := 0
	for i := 0; i < 10; i++ {
		want += i * i
	}
	assert.Equal(t, want, sum)
}

func TestReduceEarlyTermination(t *testing.T) {
	m := buildIntMap(50)
	visited := 0
	pim.Reduce(m, 0, func(acc, k, v int) (int, bool) {
		visited++
		return acc, visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestKeysValuesEntries(t *testing.T) {
	m := buildIntMap(20)
	keys := m.Keys()
	vals := m.Values()
	entries := m.Entries()

	require.Len(t, keys, 20)
	require.Len(t, vals, 20)
	require.Len(t, entries, 20)

	sort.Ints(keys)
	for i, k := range keys {
		assert.Equal(t, i, k)
	}
}

func TestMapValues(t *testing.T) {
	m := buildIntMap(10)
	strs := pim.MapValues(m, func(k, v int) string {
		return sprintIntPair(k, v)
	})
	assert.Equal(t, m.Len(), strs.Len())
	v, ok := strs.Get(3)
	require.True(t, ok)
	assert.Equal(t, sprintIntPair(3, 9), v)
}

func TestFilterEntries(t *testing.T) {
	m := buildIntMap(20)
	evens := pim.FilterEntries(m, func(k, v int) bool { return k%2 == 0 })
	assert.Equal(t, 10, evens.Len())
	evens.ForEach(func(k, v int) bool {
		assert.Equal(t, 0, k%2)
		return true
	})
}

func TestAnyAll(t *testing.T) {
	m := buildIntMap(10)
	assert.True(t, m.Any(func(k, v int) bool { return k == 5 }))
	assert.False(t, m.Any(func(k, v int) bool { return k == 50 }))
	assert.True(t, m.All(func(k, v int) bool { return v >= 0 }))
	assert.False(t, m.All(func(k, v int) bool { return v < 10 }))
}

func sprintIntPair(k, v int) string {
	return fmt.Sprintf("%d:%d", k, v)
}
