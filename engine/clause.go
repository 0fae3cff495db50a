package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Clause is a disjunction of literals. Literals are deduplicated and kept
// sorted by their printed form, so structurally equal clauses print
// identically. Clauses are immutable once constructed.
type Clause struct {
	lits []Literal
}

// NewClause builds a clause from the given literals, collapsing duplicates.
func NewClause(lits ...Literal) Clause {
	seen := make(map[string]struct{}, len(lits))
	us := make([]Literal, 0, len(lits))
	for _, l := range lits {
		k := l.String()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		us = append(us, l)
	}
	sort.Slice(us, func(i, j int) bool {
		return us[i].String() < us[j].String()
	})
	return Clause{lits: us}
}

// Literals returns the clause's literals in canonical order.
func (c Clause) Literals() []Literal {
	ls := make([]Literal, len(c.lits))
	copy(ls, c.lits)
	return ls
}

// Len returns the number of literals.
func (c Clause) Len() int {
	return len(c.lits)
}

// Empty reports whether the clause has no literals. The empty clause stands
// for a contradiction; deriving it refutes the negated query.
func (c Clause) Empty() bool {
	return len(c.lits) == 0
}

func (c Clause) String() string {
	if len(c.lits) == 0 {
		return "⊥"
	}
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// Apply returns the clause with b applied to every literal. Literals that
// collapse under the substitution are deduplicated again.
func (c Clause) Apply(b Bindings) Clause {
	lits := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		lits[i] = l.Apply(b)
	}
	return NewClause(lits...)
}

// Vars returns the clause's variables in first-occurrence order.
func (c Clause) Vars() []Variable {
	var vars []Variable
	seen := make(map[Variable]struct{})
	for _, l := range c.lits {
		for _, a := range l.Args {
			vars = appendVars(vars, seen, a)
		}
	}
	return vars
}

// Canonical returns the clause's printed form with variables renamed by
// first occurrence, so renamings of the same clause share one key. The
// clause store uses it for deduplication.
func (c Clause) Canonical() string {
	vars := c.Vars()
	if len(vars) == 0 {
		return c.String()
	}
	m := make(map[Variable]Variable, len(vars))
	for i, v := range vars {
		m[v] = Variable(fmt.Sprintf("V%d", i))
	}
	return c.rename(m).String()
}

// rename applies the simultaneous variable renaming m to every literal.
func (c Clause) rename(m map[Variable]Variable) Clause {
	lits := make([]Literal, len(c.lits))
	for i, l := range c.lits {
		args := make([]Term, len(l.Args))
		for k, a := range l.Args {
			args[k] = renameVars(a, m)
		}
		lits[i] = Literal{Functor: l.Functor, Args: args, Negative: l.Negative}
	}
	return NewClause(lits...)
}
