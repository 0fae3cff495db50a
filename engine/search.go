package engine

import (
	"fmt"

	"github.com/refutelabs/fol/internal/deque"
	"github.com/refutelabs/fol/internal/index"
)

// Verdict is the outcome of a proof attempt.
type Verdict int

const (
	// Proved means the empty clause was derived: the query is entailed.
	Proved Verdict = iota

	// Exhausted means no refutation was found within the step budget.
	// Resolution is a semi-decision procedure, so Exhausted never claims
	// the query is disproved.
	Exhausted
)

func (v Verdict) String() string {
	switch v {
	case Proved:
		return "proved"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Step is one resolution step of a derivation: the two parent clauses, the
// resolvent, and the unifier of the complementary pair.
type Step struct {
	Left, Right Clause
	Resolvent   Clause
	Mgu         Bindings
}

// Result is the outcome of Prove.
type Result struct {
	Verdict Verdict

	// Answer holds the query variables' bindings when the verdict is
	// Proved and the query contained variables.
	Answer Bindings

	// Proof is the derivation chain ending at the empty clause, in an
	// order where every step's parents appear before the step. Empty
	// unless the verdict is Proved.
	Proof []Step

	// Steps is the number of clause pairs examined.
	Steps int
}

// DefaultMaxSteps is the pair budget used when Options.MaxSteps is zero.
const DefaultMaxSteps = 10000

// Options configures a proof attempt.
type Options struct {
	// MaxSteps bounds how many clause pairs the search may examine
	// before giving up with Exhausted. Zero means DefaultMaxSteps.
	MaxSteps int
}

// Prove refutes the negation of query against kb: the knowledge base and
// the negated query are saturated under binary resolution until the empty
// clause appears or the step budget runs out.
//
// Malformed input is rejected before the search starts: a KB clause with no
// literals (ErrEmptyClause), or a query whose arity matches none of the KB
// predicates with its name (ErrArityMismatch).
//
// Each call owns its clause store and agenda; concurrent calls share
// nothing.
func Prove(kb []Clause, query Literal, opts Options) (Result, error) {
	if err := validate(kb, query); err != nil {
		return Result{}, err
	}
	s := newSearch(kb, query, opts)
	return s.run(), nil
}

func validate(kb []Clause, query Literal) error {
	for i, c := range kb {
		if c.Empty() {
			return fmt.Errorf("clause %d: %w", i, ErrEmptyClause)
		}
	}
	var named, matched bool
	for _, c := range kb {
		for _, l := range c.lits {
			if l.Functor != query.Functor {
				continue
			}
			named = true
			if len(l.Args) == len(query.Args) {
				matched = true
			}
		}
	}
	if named && !matched {
		return fmt.Errorf("%s/%d: %w", query.Functor, len(query.Args), ErrArityMismatch)
	}
	return nil
}

// entry is one clause in the append-only arena. Derived entries carry their
// parent ids, the step unifier, and the accumulated answer bindings for the
// query's variables. The stored clause is standardized apart; derived keeps
// the pre-renaming form for the proof trace.
type entry struct {
	clause  Clause
	derived Clause
	parents [2]int
	mgu     Bindings
	answer  Bindings
}

type pair struct {
	left, right int
}

type search struct {
	clauses   []entry
	seen      *index.Map[int]
	agenda    *deque.Deque[pair]
	rename    renamer
	budget    int
	queryVars []Variable
}

// renamer hands out fresh variable names for standardizing apart. It is
// owned by one search, so proof attempts are reproducible and independent.
type renamer struct {
	n int
}

func (r *renamer) next() Variable {
	r.n++
	return Variable(fmt.Sprintf("_%d", r.n))
}

func newSearch(kb []Clause, query Literal, opts Options) *search {
	s := &search{
		seen:   index.New[int](),
		agenda: deque.New[pair](64),
		budget: opts.MaxSteps,
	}
	if s.budget <= 0 {
		s.budget = DefaultMaxSteps
	}

	for _, c := range kb {
		c, _ = s.standardize(c, nil)
		s.add(entry{clause: c, derived: c, parents: [2]int{-1, -1}})
	}

	// The negated query seeds the refutation. It is standardized apart
	// like every other clause; the answer bindings start as the map from
	// the user-given variable names to their fresh names so later steps
	// can track what those become.
	seen := make(map[Variable]struct{})
	for _, a := range query.Args {
		s.queryVars = appendVars(s.queryVars, seen, a)
	}
	answer := make(Bindings, len(s.queryVars))
	for _, v := range s.queryVars {
		answer[v] = v
	}
	neg, answer := s.standardize(NewClause(query.Negate()), answer)
	s.add(entry{clause: neg, derived: neg, parents: [2]int{-1, -1}, answer: answer})

	return s
}

// add appends e to the arena unless a renaming of its clause is already
// stored, and schedules the new clause against every prior one. Ids only
// grow, so each unordered pair is enqueued exactly once.
func (s *search) add(e entry) bool {
	key := e.clause.Canonical()
	if _, ok := s.seen.Get(key); ok {
		return false
	}
	id := len(s.clauses)
	s.clauses = append(s.clauses, e)
	s.seen.Set(key, id)
	for prior := 0; prior < id; prior++ {
		s.agenda.Push(pair{left: prior, right: id})
	}
	return true
}

func (s *search) run() Result {
	steps := 0
	for !s.agenda.Empty() {
		if steps >= s.budget {
			return Result{Verdict: Exhausted, Steps: steps}
		}
		p := s.agenda.Pop()
		steps++

		left, right := s.clauses[p.left], s.clauses[p.right]
		for _, r := range Resolve(left.clause, right.clause) {
			answer := stepAnswer(left.answer, right.answer, r.Mgu)
			if r.Clause.Empty() {
				return Result{
					Verdict: Proved,
					Answer:  s.finalAnswer(answer),
					Proof:   s.chain(p, r),
					Steps:   steps,
				}
			}
			clause, answer := s.standardize(r.Clause, answer)
			s.add(entry{
				clause:  clause,
				derived: r.Clause,
				parents: [2]int{p.left, p.right},
				mgu:     r.Mgu,
				answer:  answer,
			})
		}
	}
	// Saturated: no pair left to try. Still only "not proved within the
	// budget" to the caller.
	return Result{Verdict: Exhausted, Steps: steps}
}

// standardize renames every variable of c to a fresh name so the clause
// shares none with any other stored clause. The renaming is simultaneous,
// so clauses whose variables are already named like fresh ones cannot be
// captured. The same renaming is applied to the answer bindings' values to
// keep them in step with the clause.
func (s *search) standardize(c Clause, answer Bindings) (Clause, Bindings) {
	vars := c.Vars()
	if len(vars) == 0 {
		return c, answer
	}
	m := make(map[Variable]Variable, len(vars))
	for _, v := range vars {
		m[v] = s.rename.next()
	}
	var renamed Bindings
	if len(answer) > 0 {
		renamed = make(Bindings, len(answer))
		for v, t := range answer {
			renamed[v] = renameVars(t, m)
		}
	}
	return c.rename(m), renamed
}

// stepAnswer composes the parents' answer bindings with the step unifier.
// At most one parent of a clause descends from the query in the common
// case; if both do, the left parent's view of a variable wins.
func stepAnswer(left, right Bindings, mgu Bindings) Bindings {
	if len(left) == 0 && len(right) == 0 {
		return nil
	}
	a := make(Bindings, len(left)+len(right))
	for v, t := range right {
		a[v] = mgu.Apply(t)
	}
	for v, t := range left {
		a[v] = mgu.Apply(t)
	}
	return a
}

// finalAnswer keeps only the query variables the refutation actually
// instantiated. A value that is still a variable is a fresh name the search
// never constrained, so it is dropped.
func (s *search) finalAnswer(answer Bindings) Bindings {
	final := make(Bindings)
	for _, v := range s.queryVars {
		t, ok := answer[v]
		if !ok {
			continue
		}
		if _, free := t.(Variable); free {
			continue
		}
		final[v] = t
	}
	if len(final) == 0 {
		return nil
	}
	return final
}

// chain rebuilds the derivation that produced the empty clause, parents
// before children, ending at the final step.
func (s *search) chain(final pair, r Resolvent) []Step {
	var steps []Step
	visited := make(map[int]struct{})
	var walk func(id int)
	walk = func(id int) {
		e := s.clauses[id]
		if e.parents[0] < 0 {
			return
		}
		if _, ok := visited[id]; ok {
			return
		}
		visited[id] = struct{}{}
		walk(e.parents[0])
		walk(e.parents[1])
		steps = append(steps, Step{
			Left:      s.clauses[e.parents[0]].clause,
			Right:     s.clauses[e.parents[1]].clause,
			Resolvent: e.derived,
			Mgu:       e.mgu,
		})
	}
	walk(final.left)
	walk(final.right)
	return append(steps, Step{
		Left:      s.clauses[final.left].clause,
		Right:     s.clauses[final.right].clause,
		Resolvent: r.Clause,
		Mgu:       r.Mgu,
	})
}
