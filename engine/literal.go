package engine

import (
	"strings"
)

// Literal is a predicate applied to arguments, with a polarity.
type Literal struct {
	Functor  string
	Args     []Term
	Negative bool
}

func (l Literal) String() string {
	args := make([]string, len(l.Args))
	for i, a := range l.Args {
		args[i] = a.String()
	}
	var sb strings.Builder
	if l.Negative {
		sb.WriteString("~")
	}
	sb.WriteString(l.Functor)
	if len(args) > 0 {
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

// Negate returns the literal with its polarity flipped.
func (l Literal) Negate() Literal {
	return Literal{Functor: l.Functor, Args: l.Args, Negative: !l.Negative}
}

// Apply returns the literal with b applied to every argument.
func (l Literal) Apply(b Bindings) Literal {
	args := make([]Term, len(l.Args))
	for i, a := range l.Args {
		args[i] = b.Apply(a)
	}
	return Literal{Functor: l.Functor, Args: args, Negative: l.Negative}
}

// Eq reports whether l and m are the same literal: same predicate, same
// polarity, structurally equal arguments.
func (l Literal) Eq(m Literal) bool {
	if l.Functor != m.Functor || l.Negative != m.Negative || len(l.Args) != len(m.Args) {
		return false
	}
	for i := range l.Args {
		if !Eq(l.Args[i], m.Args[i]) {
			return false
		}
	}
	return true
}

// complementary reports whether l and m are on the same predicate with the
// same arity and opposite polarity, the gate for a resolution step.
func (l Literal) complementary(m Literal) bool {
	return l.Functor == m.Functor && len(l.Args) == len(m.Args) && l.Negative != m.Negative
}

// UnifyLiterals unifies the predicates of l and m under b, ignoring
// polarity. Mismatched names or arities fail like any other non-unifiable
// pair.
func UnifyLiterals(l, m Literal, b Bindings) (Bindings, bool) {
	if l.Functor != m.Functor || len(l.Args) != len(m.Args) {
		return b, false
	}
	var ok bool
	for i := range l.Args {
		b, ok = Unify(l.Args[i], m.Args[i], b)
		if !ok {
			return b, false
		}
	}
	return b, true
}
