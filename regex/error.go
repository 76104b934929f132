package regex

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the whole compilation pipeline.
var (
	// ErrInvalidType indicates an argument of the wrong datum kind, e.g. an
	// integer outside an interval or a character used as an interval bound.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue indicates a well-typed but semantically rejected
	// argument, e.g. an unbalanced paren or an empty character class.
	ErrInvalidValue = errors.New("invalid value")
)

// PatternError wraps a validation or expansion failure with the position of
// the offending atom.
type PatternError struct {
	Pos  int
	Atom Atom
	Err  error
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern error at atom %d (%s): %v", e.Pos, e.Atom, e.Err)
}

// Unwrap returns the underlying error kind.
func (e *PatternError) Unwrap() error { return e.Err }

func invalidValue(pos int, a Atom, format string, args ...interface{}) error {
	return &PatternError{Pos: pos, Atom: a, Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidValue}, args...)...)}
}

func invalidType(pos int, a Atom, format string, args ...interface{}) error {
	return &PatternError{Pos: pos, Atom: a, Err: fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidType}, args...)...)}
}
