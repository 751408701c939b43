package colgo

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVisitor is returned when a Run helper receives a nil visitor.
	ErrNilVisitor = errors.New("colgo: nil visitor")
)

// LengthMismatchError indicates that two positionally paired sequences
// differ in length. This is the only fatal precondition a visitor checks;
// all numeric edge cases degrade to NaN/Inf instead.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LengthMismatchError struct {
	Expected int
	Actual   int
	cause    error
}

// NewLengthMismatchError creates a LengthMismatchError for paired sequences
// of the given lengths.
func NewLengthMismatchError(expected, actual int) *LengthMismatchError {
	return &LengthMismatchError{Expected: expected, Actual: actual}
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return e.cause }
