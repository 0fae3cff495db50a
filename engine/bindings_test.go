package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindings_Bind(t *testing.T) {
	b := Bindings{}.Bind(Variable("x"), Constant("a"))
	c := b.Bind(Variable("y"), Constant("b"))

	// Bind copies: the original is never disturbed.
	assert.Len(t, b, 1)
	assert.Len(t, c, 2)
	_, ok := b.Lookup(Variable("y"))
	assert.False(t, ok)

	v, ok := c.Lookup(Variable("x"))
	assert.True(t, ok)
	assert.Equal(t, Constant("a"), v)
}

func TestBindings_Resolve(t *testing.T) {
	x, y, z := Variable("x"), Variable("y"), Variable("z")
	b := Bindings{}.Bind(x, y).Bind(y, z)

	t.Run("free variable", func(t *testing.T) {
		assert.Equal(t, z, b.Resolve(x))
	})

	t.Run("chain to a term", func(t *testing.T) {
		b := b.Bind(z, Constant("a"))
		assert.Equal(t, Constant("a"), b.Resolve(x))
	})

	t.Run("non-variable unchanged", func(t *testing.T) {
		assert.Equal(t, Constant("a"), b.Resolve(Constant("a")))
	})
}

func TestBindings_Apply(t *testing.T) {
	x, y := Variable("x"), Variable("y")
	b := Bindings{}.Bind(x, &Compound{Functor: "f", Args: []Term{y}}).Bind(y, Constant("a"))

	t.Run("full dereference", func(t *testing.T) {
		// No variable with a live binding survives in the output.
		got := b.Apply(&Compound{Functor: "g", Args: []Term{x, y, Variable("free")}})
		assert.Equal(t, "g(f(a), a, ?free)", got.String())
	})

	t.Run("idempotent", func(t *testing.T) {
		term := &Compound{Functor: "g", Args: []Term{x, y}}
		once := b.Apply(term)
		assert.True(t, Eq(once, b.Apply(once)))
	})

	t.Run("unbound term unchanged", func(t *testing.T) {
		term := &Compound{Functor: "g", Args: []Term{Variable("v"), Constant("c")}}
		assert.True(t, Eq(term, b.Apply(term)))
	})
}

func TestBindings_String(t *testing.T) {
	assert.Equal(t, "{}", Bindings(nil).String())
	b := Bindings{}.Bind(Variable("y"), Constant("b")).Bind(Variable("x"), Constant("a"))
	assert.Equal(t, "{?x = a, ?y = b}", b.String())
}
