package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOperandType = errors.New("invalid operand type")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrUnknownOperation   = errors.New("unknown operation")
)

// OperandError reports an operand that is not a numeric type.
// It unwraps to ErrInvalidOperandType.
type OperandError struct {
	Position string // "a" or "b"
	Value    Value
}

func (e *OperandError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: operand %s is nil", ErrInvalidOperandType, e.Position)
	}
	return fmt.Sprintf("%s: operand %s is %T (%v), want int or float", ErrInvalidOperandType, e.Position, e.Value, e.Value)
}

func (e *OperandError) Unwrap() error { return ErrInvalidOperandType }

// UnknownOperationError carries the selector that matched no operation.
// It unwraps to ErrUnknownOperation.
type UnknownOperationError struct {
	Selector string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnknownOperation, e.Selector)
}

func (e *UnknownOperationError) Unwrap() error { return ErrUnknownOperation }

// ErrorKind names the calculation error class of err, or "" when err is
// nil or not one of the three.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidOperandType):
		return "invalid_operand_type"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrUnknownOperation):
		return "unknown_operation"
	default:
		return ""
	}
}
