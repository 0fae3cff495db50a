package engine

// Resolvent is a clause derived from one complementary literal pair,
// together with the unifier that produced it.
type Resolvent struct {
	Clause Clause
	Mgu    Bindings
}

// Resolve returns every resolvent obtainable from the pair a, b: one per
// complementary literal pair whose predicates unify. Resolvents that are
// tautologies are discarded and never reach the caller.
//
// The operands must already be standardized apart; the search guarantees
// that for every pair it schedules.
func Resolve(a, b Clause) []Resolvent {
	var rs []Resolvent
	for i, la := range a.lits {
		for j, lb := range b.lits {
			if !la.complementary(lb) {
				continue
			}
			mgu, ok := UnifyLiterals(la, lb, nil)
			if !ok {
				continue
			}
			lits := make([]Literal, 0, len(a.lits)+len(b.lits)-2)
			for k, l := range a.lits {
				if k != i {
					lits = append(lits, l.Apply(mgu))
				}
			}
			for k, l := range b.lits {
				if k != j {
					lits = append(lits, l.Apply(mgu))
				}
			}
			if tautology(lits) {
				continue
			}
			rs = append(rs, Resolvent{Clause: NewClause(lits...), Mgu: mgu})
		}
	}
	return rs
}

// tautology reports whether lits contains a complementary pair whose
// arguments are identical after substitution. The check is deliberately
// syntactic: arguments must match by kind and name, not merely up to
// renaming.
func tautology(lits []Literal) bool {
	for i, l := range lits {
		for _, m := range lits[i+1:] {
			if !l.complementary(m) {
				continue
			}
			same := true
			for k := range l.Args {
				if !Eq(l.Args[k], m.Args[k]) {
					same = false
					break
				}
			}
			if same {
				return true
			}
		}
	}
	return false
}
