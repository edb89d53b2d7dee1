package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrDomain        = errors.New("argument outside function domain")
)

// ShapeError provides detailed information about a shape mismatch.
type ShapeError struct {
	Op   string // Operation that rejected its operands (e.g., "ComputeScores")
	What string // Which operand or dimension was wrong
	Got  Shape
	Want Shape
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.What != "" {
		return fmt.Sprintf("%s: %s: got %v, want %v", e.Op, e.What, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: got %v, want %v", e.Op, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// NewShapeError builds a ShapeError for op.
func NewShapeError(op, what string, got, want Shape) error {
	return &ShapeError{Op: op, What: what, Got: got.Clone(), Want: want.Clone()}
}

// DomainError reports an argument for which op is undefined.
func DomainError(op string, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrDomain, fmt.Sprintf(format, args...))
}
