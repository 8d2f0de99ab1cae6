package prog

import (
	"errors"
	"fmt"
)

// ErrCorrupt indicates a buffer that breaks the item layout invariants.
// The compiler never produces one; seeing it is a programming error.
var ErrCorrupt = errors.New("corrupt pattern buffer")

// CompileError wraps a compilation failure with the pattern that caused it.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// corrupt panics with ErrCorrupt and the offending slot offset.
func corrupt(at int, format string, args ...any) {
	panic(fmt.Errorf("%w at slot %d: %s", ErrCorrupt, at, fmt.Sprintf(format, args...)))
}
