// Package solveerr classifies every error the solver can produce into
// the six kinds the search engine's contract distinguishes: malformed
// input, configuration mistakes, search-time cancellation, and the
// single assertion-level "this should not happen" bucket.
//
// Parsing and configuration errors are expected to surface before a
// search ever starts; Cancelled and Internal are the only kinds a
// running search itself can raise.
package solveerr

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies the reason a request was rejected or aborted.
type Kind int

const (
	// InvalidScramble: scramble text fails tokenization or bracket balance.
	InvalidScramble Kind = iota
	// InvalidStepConfig: unknown kind, illegal substep, bad param, illegal order.
	InvalidStepConfig
	// UnsupportedTrigger: trigger algorithm parses but doesn't end in a
	// quarter-turn on the expected axis.
	UnsupportedTrigger
	// TableMissing: a step needs a table neither loaded nor generatable.
	TableMissing
	// Cancelled: the request's cancellation token fired.
	Cancelled
	// Internal: invariant violation; the request is aborted.
	Internal
)

// String renders the kind's constant name.
func (k Kind) String() string {
	switch k {
	case InvalidScramble:
		return "InvalidScramble"
	case InvalidStepConfig:
		return "InvalidStepConfig"
	case UnsupportedTrigger:
		return "UnsupportedTrigger"
	case TableMissing:
		return "TableMissing"
	case Cancelled:
		return "Cancelled"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with a Kind so callers can
// errors.As(err, &solveerr.Error{}) and branch on Kind without string
// matching.
type Error struct {
	Kind Kind
	Op   string // the operation that failed, e.g. "scramble.Parse"
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind. Internal-kind errors are
// annotated with a stack trace at the call site, since those are the
// "should not occur" assertion failures a maintainer will need a trace
// for; the other kinds stay plain.
func New(kind Kind, op string, err error) *Error {
	if kind == Internal {
		err = pkgerrors.WithStack(err)
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf is New with a formatted message instead of a wrapped error.
func Newf(kind Kind, op, format string, args ...interface{}) *Error {
	return New(kind, op, fmt.Errorf(format, args...))
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
