package dolly

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() on a recovered *UsageError to check for these.
var (
	// ErrNilSource indicates a clone was requested from a nil source.
	ErrNilSource = errors.New("nil source")

	// ErrNilDestination indicates an in-place clone was given a nil destination.
	ErrNilDestination = errors.New("nil destination")

	// ErrNilTarget indicates Allocate returned a nil instance.
	ErrNilTarget = errors.New("allocate returned nil target")

	// ErrTypeMismatch indicates CloneAny returned a value of a different type.
	ErrTypeMismatch = errors.New("clone type mismatch")
)

// UsageError is the panic value for precondition and misuse faults.
// It wraps a sentinel error with the failing operation and the offending type.
type UsageError struct {
	Err  error  // Underlying sentinel error (ErrNilSource, etc.)
	Op   string // Operation that detected the fault
	Type string // Type of the offending value, if known
}

func (e *UsageError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("dolly: %s: %s (%s)", e.Op, e.Err.Error(), e.Type)
	}
	return fmt.Sprintf("dolly: %s: %s", e.Op, e.Err.Error())
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a UsageError for op, naming the type of v.
func NewUsageError(sentinel error, op string, v any) *UsageError {
	return &UsageError{
		Err:  sentinel,
		Op:   op,
		Type: typeName(v),
	}
}

// usageFault emits a usage signal and panics with a *UsageError.
func usageFault(op string, sentinel error, v any) {
	err := NewUsageError(sentinel, op, v)
	emitUsageFault(context.Background(), err)
	panic(err)
}

func typeName(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%T", v)
}
