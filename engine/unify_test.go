package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(args ...Term) Term { return &Compound{Functor: "f", Args: args} }
func g(args ...Term) Term { return &Compound{Functor: "g", Args: args} }

func TestUnify(t *testing.T) {
	x, y := Variable("x"), Variable("y")
	a, b := Constant("a"), Constant("b")

	t.Run("constants", func(t *testing.T) {
		subst := Bindings{}.Bind(Variable("keep"), a)
		got, ok := Unify(a, a, subst)
		assert.True(t, ok)
		assert.Equal(t, subst, got)

		_, ok = Unify(a, b, subst)
		assert.False(t, ok)
	})

	t.Run("identical variables", func(t *testing.T) {
		got, ok := Unify(x, x, nil)
		assert.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("variable binds", func(t *testing.T) {
		got, ok := Unify(x, f(a), nil)
		assert.True(t, ok)
		assert.Equal(t, "f(a)", got.Apply(x).String())

		got, ok = Unify(f(a), x, nil)
		assert.True(t, ok)
		assert.Equal(t, "f(a)", got.Apply(x).String())
	})

	t.Run("occurs check", func(t *testing.T) {
		_, ok := Unify(x, f(x), nil)
		assert.False(t, ok)

		// Through a binding chain as well.
		subst := Bindings{}.Bind(y, x)
		_, ok = Unify(x, f(y), subst)
		assert.False(t, ok)
	})

	t.Run("compounds", func(t *testing.T) {
		got, ok := Unify(f(x, g(y)), f(a, g(b)), nil)
		assert.True(t, ok)
		assert.Equal(t, a, got.Apply(x))
		assert.Equal(t, b, got.Apply(y))
	})

	t.Run("functor mismatch", func(t *testing.T) {
		_, ok := Unify(f(a), g(a), nil)
		assert.False(t, ok)
	})

	t.Run("arity mismatch", func(t *testing.T) {
		_, ok := Unify(f(a), f(a, b), nil)
		assert.False(t, ok)
	})

	t.Run("variant mismatch", func(t *testing.T) {
		_, ok := Unify(a, f(a), nil)
		assert.False(t, ok)
	})

	t.Run("threading short-circuits", func(t *testing.T) {
		// x binds to a in the first argument, so the second cannot
		// rebind it to b.
		_, ok := Unify(f(x, x), f(a, b), nil)
		assert.False(t, ok)
	})
}

// Soundness: whenever a unifier is found, it makes both terms identical.
func TestUnify_Soundness(t *testing.T) {
	x, y, z := Variable("x"), Variable("y"), Variable("z")
	a, b := Constant("a"), Constant("b")

	cases := [][2]Term{
		{x, a},
		{f(x, y), f(y, a)},
		{f(x, g(y, b)), f(g(a, z), g(g(a, z), b))},
		{f(x, x), f(y, a)},
	}
	for _, c := range cases {
		t.Run(c[0].String()+" = "+c[1].String(), func(t *testing.T) {
			theta, ok := Unify(c[0], c[1], nil)
			assert.True(t, ok)
			assert.True(t, Eq(theta.Apply(c[0]), theta.Apply(c[1])))
		})
	}
}

func TestUnifyLiterals(t *testing.T) {
	x := Variable("x")
	a, b := Constant("a"), Constant("b")

	t.Run("unifies arguments", func(t *testing.T) {
		theta, ok := UnifyLiterals(
			Literal{Functor: "p", Args: []Term{x, b}},
			Literal{Functor: "p", Args: []Term{a, b}},
			nil,
		)
		assert.True(t, ok)
		assert.Equal(t, a, theta.Apply(x))
	})

	t.Run("polarity is ignored", func(t *testing.T) {
		_, ok := UnifyLiterals(
			Literal{Functor: "p", Args: []Term{a}},
			Literal{Functor: "p", Args: []Term{a}, Negative: true},
			nil,
		)
		assert.True(t, ok)
	})

	t.Run("name mismatch", func(t *testing.T) {
		_, ok := UnifyLiterals(
			Literal{Functor: "p", Args: []Term{a}},
			Literal{Functor: "q", Args: []Term{a}},
			nil,
		)
		assert.False(t, ok)
	})

	t.Run("arity mismatch", func(t *testing.T) {
		_, ok := UnifyLiterals(
			Literal{Functor: "p", Args: []Term{a}},
			Literal{Functor: "p", Args: []Term{a, b}},
			nil,
		)
		assert.False(t, ok)
	})
}
