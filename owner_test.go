package pim_test

import (
	"testing"

	"github.com/lleo/go-pim"
	"github.com/stretchr/testify/assert"
)

func TestAsMutableIdempotent(t *testing.T) {
	base := pim.New[string, int]()
	mut1 := base.AsMutable()
	mut2 := mut1.AsMutable()
	assert.Same(t, mut1, mut2, "AsMutable on an already-mutable map returns the same handle")
}

func TestAsImmutableIdempotent(t *testing.T) {
	base := pim.New[string, int]().Set("a", 1)
	assert.Same(t, base, base.AsImmutable(), "AsImmutable on an already-immutable map is a no-op")
}

func TestSealedHandleBehavesImmutably(t *testing.T) {
	mut := pim.New[string, int]().AsMutable()
	mut = mut.Set("a", 1)
	sealed := mut.AsImmutable()

	// The pre-seal and post-seal references are the same Go pointer (the
	// façade seals in place), but further writes against it must now
	// behave like ordinary persistent writes: produce a new handle and
	// leave the sealed snapshot's contents untouched.
	next := sealed.Set("b", 2)
	assert.NotSame(t, sealed, next)

	_, hasB := sealed.Get("b")
	assert.False(t, hasB)
	_, hasB2 := next.Get("b")
	assert.True(t, hasB2)
}

func TestIndependentTransientsDoNotInterfere(t *testing.T) {
	base := pim.New[string, int]().Set("shared", 0)

	t1 := base.AsMutable().Set("a", 1)
	t2 := base.AsMutable().Set("b", 2)

	r1 := t1.AsImmutable()
	r2 := t2.AsImmutable()

	_, ok := r1.Get("b")
	assert.False(t, ok)
	_, ok = r2.Get("a")
	assert.False(t, ok)

	v, ok := r1.Get("shared")
	assert.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestWasAlteredStartsFalse(t *testing.T) {
	mut := pim.New[string, int]().AsMutable()
	assert.False(t, mut.WasAltered())
	mut = mut.Set("a", 1)
	assert.True(t, mut.WasAltered())
}
