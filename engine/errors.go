package engine

import "errors"

// Malformed-input conditions, detected before the search starts.
var (
	// ErrEmptyClause marks a knowledge base that contains a clause with
	// no literals. Only derivation may produce the empty clause.
	ErrEmptyClause = errors.New("empty clause in knowledge base")

	// ErrArityMismatch marks a query whose arity matches no knowledge
	// base predicate of the same name.
	ErrArityMismatch = errors.New("query arity matches no knowledge base predicate")
)
