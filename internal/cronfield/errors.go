package cronfield

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidNumber  = errors.New("invalid number")
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidRange   = errors.New("invalid range")
	ErrOutOfBounds    = errors.New("value out of bounds")
)

// FieldError is implemented by every error this package returns, so callers
// can attribute a failure to a field without parsing the message.
type FieldError interface {
	error
	FieldName() string
}

// InvalidNumberError reports a literal that should have been an integer.
// A zero divisor is reported as an InvalidNumberError wrapping ErrDivisionByZero.
type InvalidNumberError struct {
	Field   string
	Literal string
	Err     error
}

func (e *InvalidNumberError) Error() string {
	if errors.Is(e.Err, ErrDivisionByZero) {
		return fmt.Sprintf("%s divisor %q: %v", e.Field, e.Literal, ErrDivisionByZero)
	}
	return fmt.Sprintf("%s value %q is not a number", e.Field, e.Literal)
}

func (e *InvalidNumberError) FieldName() string { return e.Field }

func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

func (e *InvalidNumberError) Unwrap() error { return e.Err }

var _ FieldError = (*InvalidNumberError)(nil)

// InvalidRangeError reports a range whose start is greater than its end.
type InvalidRangeError struct {
	Field string
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s range %d-%d starts after it ends", e.Field, e.Start, e.End)
}

func (e *InvalidRangeError) FieldName() string { return e.Field }

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

var _ FieldError = (*InvalidRangeError)(nil)

// Bound identifies which side of a field's bounds was violated.
type Bound int

const (
	BoundMin Bound = iota + 1
	BoundMax
)

func (b Bound) String() string {
	switch b {
	case BoundMin:
		return "min"
	case BoundMax:
		return "max"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// OutOfBoundsError reports an expanded value outside the field's bounds.
type OutOfBoundsError struct {
	Field string
	Value int
	Bound Bound
	Limit int
}

func (e *OutOfBoundsError) Error() string {
	if e.Bound == BoundMin {
		return fmt.Sprintf("%s value %d less than min %d", e.Field, e.Value, e.Limit)
	}
	return fmt.Sprintf("%s value %d greater than max %d", e.Field, e.Value, e.Limit)
}

func (e *OutOfBoundsError) FieldName() string { return e.Field }

func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

var _ FieldError = (*OutOfBoundsError)(nil)
