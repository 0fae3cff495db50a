package engine

import (
	"fmt"
	"strings"
)

// Term is a first-order logic term: a variable, a constant, or a compound.
// The set of variants is closed; every consumer in this package switches
// exhaustively over the three.
type Term interface {
	fmt.Stringer

	// Unify unifies the term with t under b and returns the extended
	// bindings. The second return value is false if the terms do not
	// unify; that is an ordinary negative result, not an error.
	Unify(t Term, b Bindings) (Bindings, bool)

	compare(t Term) int
}

// Variable is a named logic variable.
type Variable string

func (v Variable) String() string { return "?" + string(v) }

func (v Variable) compare(t Term) int {
	if u, ok := t.(Variable); ok {
		return strings.Compare(string(v), string(u))
	}
	return -1
}

// Constant is a named individual.
type Constant string

func (c Constant) String() string { return string(c) }

func (c Constant) compare(t Term) int {
	switch t := t.(type) {
	case Variable:
		return 1
	case Constant:
		return strings.Compare(string(c), string(t))
	default:
		return -1
	}
}

// Compound is a function symbol applied to arguments. Its arity is fixed at
// construction.
type Compound struct {
	Functor string
	Args    []Term
}

func (c *Compound) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Functor, strings.Join(args, ", "))
}

func (c *Compound) compare(t Term) int {
	u, ok := t.(*Compound)
	if !ok {
		return 1
	}
	if d := len(c.Args) - len(u.Args); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	if d := strings.Compare(c.Functor, u.Functor); d != 0 {
		return d
	}
	for i := range c.Args {
		if d := c.Args[i].compare(u.Args[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Eq reports whether t1 and t2 are structurally equal: same variant, same
// name, same arguments recursively.
func Eq(t1, t2 Term) bool {
	return t1.compare(t2) == 0
}

// Compare gives a total order over terms: variables, then constants, then
// compounds, with ties broken structurally.
func Compare(t1, t2 Term) int {
	return t1.compare(t2)
}

// Contains reports whether the variable v occurs anywhere in t after
// dereferencing under b.
func Contains(t Term, v Variable, b Bindings) bool {
	switch t := b.Resolve(t).(type) {
	case Variable:
		return t == v
	case *Compound:
		for _, a := range t.Args {
			if Contains(a, v, b) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// renameVars applies m to t as a simultaneous renaming: each variable is
// looked up once and never chained, so source names may overlap target
// names without capture.
func renameVars(t Term, m map[Variable]Variable) Term {
	switch t := t.(type) {
	case Variable:
		if u, ok := m[t]; ok {
			return u
		}
		return t
	case *Compound:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = renameVars(a, m)
		}
		return &Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

func appendVars(vars []Variable, seen map[Variable]struct{}, t Term) []Variable {
	switch t := t.(type) {
	case Variable:
		if _, ok := seen[t]; ok {
			return vars
		}
		seen[t] = struct{}{}
		return append(vars, t)
	case *Compound:
		for _, a := range t.Args {
			vars = appendVars(vars, seen, a)
		}
	}
	return vars
}
