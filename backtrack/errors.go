package backtrack

import (
	"errors"
	"fmt"
)

// ErrTooComplex indicates the recursive matcher exceeded its configured
// recursion depth while evaluating a line. Depth grows by one for each
// unit matched in sequence and for each alternation branch entered, so a
// pattern with many units is what exceeds it.
var ErrTooComplex = errors.New("match exceeded recursion depth limit")

// MatchError wraps a failure encountered while matching, as opposed to a
// plain "no match" result (which is reported as ok == false, err == nil).
type MatchError struct {
	Err error
}

// Error implements the error interface.
func (e *MatchError) Error() string {
	return fmt.Sprintf("match: %v", e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *MatchError) Unwrap() error {
	return e.Err
}
