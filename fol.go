// Package fol proves first-order logic queries by resolution refutation.
//
// The root package is a thin facade: it parses clauses and knowledge base
// files and hands the engine package a knowledge base plus a query. See the
// engine package for the term model, the unifier, and the saturation
// search.
package fol

import (
	"fmt"

	"github.com/refutelabs/fol/engine"
	"github.com/refutelabs/fol/internal/index"
)

// Options configures a Prover.
type Options struct {
	// MaxSteps bounds each proof attempt. Zero means
	// engine.DefaultMaxSteps.
	MaxSteps int
}

// Prover holds a deduplicated knowledge base and proves queries against it.
type Prover struct {
	kb   *index.Map[engine.Clause]
	opts Options
}

// New creates a Prover with an empty knowledge base.
func New(opts Options) *Prover {
	return &Prover{kb: index.New[engine.Clause](), opts: opts}
}

// Assert adds a clause in text form, e.g.
// "~parent(?x, ?y) | ~parent(?y, ?z) | grandparent(?x, ?z)".
func (p *Prover) Assert(clause string) error {
	c, err := ParseClause(clause)
	if err != nil {
		return err
	}
	p.AssertClause(c)
	return nil
}

// AssertClause adds a clause. Asserting a clause that is already present,
// up to variable renaming, is a no-op.
func (p *Prover) AssertClause(c engine.Clause) {
	p.kb.Set(c.Canonical(), c)
}

// AddKB asserts every clause of kb.
func (p *Prover) AddKB(kb KB) error {
	for i, s := range kb.Clauses {
		if err := p.Assert(s); err != nil {
			return fmt.Errorf("clause %d: %w", i, err)
		}
	}
	return nil
}

// Consult loads the clauses of the YAML knowledge base file at path. The
// file's query field, if any, is ignored here; use ReadKBFile to see it.
func (p *Prover) Consult(path string) error {
	kb, err := ReadKBFile(path)
	if err != nil {
		return err
	}
	return p.AddKB(kb)
}

// Clauses returns the knowledge base in canonical order.
func (p *Prover) Clauses() []engine.Clause {
	cs := make([]engine.Clause, 0, p.kb.Len())
	p.kb.All(func(_ string, c engine.Clause) bool {
		cs = append(cs, c)
		return true
	})
	return cs
}

// Prove parses query as a literal and attempts to refute its negation
// against the knowledge base.
func (p *Prover) Prove(query string) (engine.Result, error) {
	q, err := ParseLiteral(query)
	if err != nil {
		return engine.Result{}, err
	}
	return p.ProveLiteral(q)
}

// ProveLiteral is Prove for an already-built query literal.
func (p *Prover) ProveLiteral(q engine.Literal) (engine.Result, error) {
	return engine.Prove(p.Clauses(), q, engine.Options{MaxSteps: p.opts.MaxSteps})
}
