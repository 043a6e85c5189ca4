package syntax

import (
	"errors"
	"fmt"
)

// Sentinel parse-error kinds, one per row of the error taxonomy.
var (
	// ErrDanglingEscape indicates a trailing '\' with no following byte.
	ErrDanglingEscape = errors.New("dangling escape")

	// ErrModifierWithoutToken indicates '?', '+', or '{...}' applied with
	// no preceding unit to modify.
	ErrModifierWithoutToken = errors.New("modifier used without a preceding token")

	// ErrUnterminatedGroup indicates '(', '[', or '{' without its
	// matching close byte.
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrEmptyGroup indicates an empty '()', '[]', or '{}'.
	ErrEmptyGroup = errors.New("empty group")

	// ErrBadQuantifier indicates non-numeric content inside '{...}', or a
	// '{n,m}' whose min exceeds its max.
	ErrBadQuantifier = errors.New("invalid quantifier")

	// ErrNonUTF8Quantifier indicates '{...}' contents that aren't valid
	// UTF-8, so they can't even be considered for decimal parsing.
	ErrNonUTF8Quantifier = errors.New("quantifier is not valid UTF-8")

	// ErrQuantifierTooLarge indicates a {n} or {n,m} value exceeding the
	// configured Config.MaxQuantifier.
	ErrQuantifierTooLarge = errors.New("quantifier exceeds maximum")
)

// ParseError wraps a parse failure with the pattern text and the byte
// offset at which it occurred, matching the wrap-with-context shape of
// the teacher's nfa.CompileError.
type ParseError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse pattern %q at byte %d: %v", e.Pattern, e.Pos, e.Err)
}

// Unwrap returns the underlying sentinel error, so errors.Is(err,
// syntax.ErrUnterminatedGroup) and friends work against a *ParseError.
func (e *ParseError) Unwrap() error {
	return e.Err
}
