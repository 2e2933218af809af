// File: nest/errors.go
package nest

import "fmt"

// ErrorCode identifies the category of a nest error.
type ErrorCode int

const (
	// ErrInvalidInput indicates a malformed argument: an unsupported root
	// container type, a path segment that is neither string nor int, or a
	// nil predicate. Never suppressed by silent mode.
	ErrInvalidInput ErrorCode = iota + 1
	// ErrTraversal indicates an intermediate path segment did not resolve
	// to a container, or a segment could not be coerced against the
	// container kind it addresses.
	ErrTraversal
	// ErrKeyNotFound indicates the final segment does not exist in its
	// parent mapping.
	ErrKeyNotFound
	// ErrIndexOutOfBounds indicates a sequence index was out of range for
	// a read.
	ErrIndexOutOfBounds
	// ErrIndexAssignment indicates assignment to a sequence index that
	// does not already exist. Only the append symbol grows a sequence.
	ErrIndexAssignment
	// ErrNotIterable indicates a wildcard segment was positioned against a
	// leaf value during pattern expansion.
	ErrNotIterable
)

// Error is the structured error type returned by all nest operations.
// Use Code to programmatically distinguish error categories.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode
	// Message is a human-readable description.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nest: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("nest: %s", e.Message)
}

// Unwrap returns the underlying cause, supporting errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsInputError returns true if err indicates a malformed argument.
func IsInputError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrInvalidInput
	}
	return false
}

// IsTraversalError returns true if err indicates a path segment that could
// not be walked through.
func IsTraversalError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrTraversal
	}
	return false
}

// IsNotFound returns true if err indicates a missing key or an
// out-of-bounds index on read.
func IsNotFound(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrKeyNotFound || e.Code == ErrIndexOutOfBounds
	}
	return false
}

// IsRangeError returns true if err indicates an assignment to a
// non-existing sequence index.
func IsRangeError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrIndexAssignment
	}
	return false
}

// IsIterationError returns true if err indicates a wildcard positioned
// against a value that cannot be iterated.
func IsIterationError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrNotIterable
	}
	return false
}
