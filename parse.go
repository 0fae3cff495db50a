package fol

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/refutelabs/fol/engine"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("syntax error")

// ParseLiteral parses a single literal such as "~parent(?x, bob)". A leading
// "~" negates, "?" marks a variable, and any other name is a constant or,
// with an argument list, a compound.
func ParseLiteral(s string) (engine.Literal, error) {
	p := parser{input: s}
	l, err := p.literal()
	if err != nil {
		return engine.Literal{}, err
	}
	if err := p.end(); err != nil {
		return engine.Literal{}, err
	}
	return l, nil
}

// ParseClause parses a disjunction of literals separated by "|", e.g.
// "~parent(?x, ?y) | ~parent(?y, ?z) | grandparent(?x, ?z)".
func ParseClause(s string) (engine.Clause, error) {
	p := parser{input: s}
	var lits []engine.Literal
	for {
		l, err := p.literal()
		if err != nil {
			return engine.Clause{}, err
		}
		lits = append(lits, l)
		if !p.eat('|') {
			break
		}
	}
	if err := p.end(); err != nil {
		return engine.Clause{}, err
	}
	return engine.NewClause(lits...), nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skip() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.input) {
		return p.input[p.pos]
	}
	return 0
}

func (p *parser) eat(c byte) bool {
	p.skip()
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) name() (string, error) {
	p.skip()
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c) {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return "", fmt.Errorf("column %d: want a name: %w", start+1, ErrSyntax)
	}
	return p.input[start:p.pos], nil
}

func (p *parser) term() (engine.Term, error) {
	p.skip()
	if p.eat('?') {
		n, err := p.name()
		if err != nil {
			return nil, err
		}
		return engine.Variable(n), nil
	}
	n, err := p.name()
	if err != nil {
		return nil, err
	}
	if !p.eat('(') {
		return engine.Constant(n), nil
	}
	args, err := p.args()
	if err != nil {
		return nil, err
	}
	return &engine.Compound{Functor: n, Args: args}, nil
}

func (p *parser) args() ([]engine.Term, error) {
	var args []engine.Term
	for {
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
		if p.eat(',') {
			continue
		}
		if p.eat(')') {
			return args, nil
		}
		return nil, fmt.Errorf("column %d: want ',' or ')': %w", p.pos+1, ErrSyntax)
	}
}

func (p *parser) literal() (engine.Literal, error) {
	p.skip()
	neg := p.eat('~')
	n, err := p.name()
	if err != nil {
		return engine.Literal{}, err
	}
	var args []engine.Term
	if p.eat('(') {
		args, err = p.args()
		if err != nil {
			return engine.Literal{}, err
		}
	}
	return engine.Literal{Functor: n, Args: args, Negative: neg}, nil
}

func (p *parser) end() error {
	p.skip()
	if p.pos != len(p.input) {
		return fmt.Errorf("column %d: trailing input: %w", p.pos+1, ErrSyntax)
	}
	return nil
}
