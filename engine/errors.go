package engine

import (
	"errors"
	"fmt"
)

// InvariantError reports a broken precondition of an engine call. It is a
// programming error, never the result of bad user input.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine invariant violated in %s: %s", e.Op, e.Msg)
}

// IsInvariant reports whether err wraps an *InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

func invariantf(op, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
