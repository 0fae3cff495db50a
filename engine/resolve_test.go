package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	a, b := Constant("a"), Constant("b")
	x := Variable("x")

	t.Run("no complementary pair", func(t *testing.T) {
		rs := Resolve(NewClause(pos("p", a)), NewClause(pos("p", a)))
		assert.Empty(t, rs)
	})

	t.Run("unit clauses resolve to the empty clause", func(t *testing.T) {
		rs := Resolve(NewClause(pos("p", a)), NewClause(neg("p", x)))
		assert.Len(t, rs, 1)
		assert.True(t, rs[0].Clause.Empty())
		assert.Equal(t, a, rs[0].Mgu.Apply(x))
	})

	t.Run("arity gate", func(t *testing.T) {
		rs := Resolve(NewClause(pos("p", a)), NewClause(neg("p", a, b)))
		assert.Empty(t, rs)
	})

	t.Run("substitution reaches the remainder", func(t *testing.T) {
		// p(a) against ~p(?x) ∨ q(?x) leaves q(a).
		rs := Resolve(NewClause(pos("p", a)), NewClause(neg("p", x), pos("q", x)))
		assert.Len(t, rs, 1)
		assert.Equal(t, "q(a)", rs[0].Clause.String())
	})

	t.Run("one resolvent per eligible pair", func(t *testing.T) {
		rs := Resolve(NewClause(pos("p", a), pos("p", b)), NewClause(neg("p", x)))
		assert.Len(t, rs, 2)
		got := []string{rs[0].Clause.String(), rs[1].Clause.String()}
		assert.ElementsMatch(t, []string{"p(a)", "p(b)"}, got)
	})

	t.Run("tautologies are discarded", func(t *testing.T) {
		// Resolving on q would leave p(a) ∨ ~p(a); only the resolvent
		// on p survives.
		left := NewClause(pos("p", a), pos("q", x))
		right := NewClause(neg("q", Constant("c")), neg("p", a))
		rs := Resolve(left, right)
		assert.Len(t, rs, 1)
		assert.Equal(t, "q(?x) ∨ ~q(c)", rs[0].Clause.String())
	})
}

func TestTautology(t *testing.T) {
	a := Constant("a")
	x, y := Variable("x"), Variable("y")

	assert.True(t, tautology([]Literal{pos("p", a), neg("p", a)}))
	assert.True(t, tautology([]Literal{pos("p", x), neg("p", x)}))

	// The check is syntactic: differently named variables do not cancel.
	assert.False(t, tautology([]Literal{pos("p", x), neg("p", y)}))
	assert.False(t, tautology([]Literal{pos("p", a), pos("p", a)}))
	assert.False(t, tautology([]Literal{pos("p", a), neg("p", Constant("b"))}))
}
