package engine

// Unify returns the most general unifier of t1 and t2 under b, or false if
// none exists. Failure includes mismatched constants, mismatched functors or
// arities, and occurs-check violations; none of them is an error.
func Unify(t1, t2 Term, b Bindings) (Bindings, bool) {
	return b.Resolve(t1).Unify(t2, b)
}

// Unify unifies the variable with t.
func (v Variable) Unify(t Term, b Bindings) (Bindings, bool) {
	t = b.Resolve(t)
	if u, ok := t.(Variable); ok && u == v {
		return b, true
	}
	// The occurs check keeps the engine from binding a variable to a term
	// that contains it, which would build a cyclic term.
	if Contains(t, v, b) {
		return b, false
	}
	return b.Bind(v, t), true
}

// Unify unifies the constant with t.
func (c Constant) Unify(t Term, b Bindings) (Bindings, bool) {
	switch t := b.Resolve(t).(type) {
	case Constant:
		return b, c == t
	case Variable:
		return t.Unify(c, b)
	default:
		return b, false
	}
}

// Unify unifies the compound with t.
func (c *Compound) Unify(t Term, b Bindings) (Bindings, bool) {
	switch t := b.Resolve(t).(type) {
	case *Compound:
		if c.Functor != t.Functor || len(c.Args) != len(t.Args) {
			return b, false
		}
		var ok bool
		for i := range c.Args {
			b, ok = Unify(c.Args[i], t.Args[i], b)
			if !ok {
				return b, false
			}
		}
		return b, true
	case Variable:
		return t.Unify(c, b)
	default:
		return b, false
	}
}
