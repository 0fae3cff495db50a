package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Bindings is a substitution: a finite mapping from variable names to terms.
// A nil Bindings is a valid empty substitution.
//
// Bindings values are never shared mutably: Bind copies, so extending a
// substitution during one unification attempt cannot disturb another.
type Bindings map[Variable]Term

// Bind returns a copy of b extended with v -> t. b itself is left untouched.
func (b Bindings) Bind(v Variable, t Term) Bindings {
	c := make(Bindings, len(b)+1)
	for k, u := range b {
		c[k] = u
	}
	c[v] = t
	return c
}

// Lookup returns the term bound to v, if any.
func (b Bindings) Lookup(v Variable) (Term, bool) {
	t, ok := b[v]
	return t, ok
}

// Resolve follows the binding chain and returns the first non-variable term
// or the last free variable. Chains are acyclic because Unify performs the
// occurs check before every Bind.
func (b Bindings) Resolve(t Term) Term {
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		u, ok := b[v]
		if !ok {
			return v
		}
		t = u
	}
}

// Apply substitutes every bound variable in t, recursively, until no
// variable in the result carries a live binding. Applying the same bindings
// twice yields the same term as applying them once.
func (b Bindings) Apply(t Term) Term {
	switch t := b.Resolve(t).(type) {
	case *Compound:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = b.Apply(a)
		}
		return &Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

func (b Bindings) String() string {
	if len(b) == 0 {
		return "{}"
	}
	pairs := make([]string, 0, len(b))
	for v, t := range b {
		pairs = append(pairs, fmt.Sprintf("%s = %s", v, t))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}
