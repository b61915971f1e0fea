// Package calc implements the arithmetic dispatcher.
//
// [Evaluate] is the typed core: a closed [domain.Operation] and two
// [domain.Number] operands. [Dispatcher.EvaluateRaw] is the boundary for
// values that come from outside the type system. It checks operand types
// first, then converts the selector text, then evaluates.
//
// Nothing here holds mutable state, so every function is safe for
// concurrent use.
package calc

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

// Evaluate applies op to a and b.
//
// Integer operands stay integers under add, subtract and multiply; a
// result that does not fit in int64 is returned as a float instead.
// Divide is always true division and returns a float. A zero divisor
// returns domain.ErrDivisionByZero. An op outside the enum returns an
// *domain.UnknownOperationError. On error the returned Number is the
// zero value.
func Evaluate(op domain.Operation, a, b domain.Number) (domain.Number, error) {
	if !op.Valid() {
		return domain.Number{}, &domain.UnknownOperationError{Selector: fmt.Sprintf("operation(%d)", int(op))}
	}
	switch op {
	case domain.OpAdd:
		return add(a, b), nil
	case domain.OpSubtract:
		return subtract(a, b), nil
	case domain.OpMultiply:
		return multiply(a, b), nil
	}
	if b.IsZero() {
		return domain.Number{}, domain.ErrDivisionByZero
	}
	return domain.Float(a.Float64() / b.Float64()), nil
}

func add(a, b domain.Number) domain.Number {
	x, okA := a.Int64()
	y, okB := b.Int64()
	if okA && okB {
		s := x + y
		// Overflow iff both operands share a sign the sum does not.
		if (x^s)&(y^s) >= 0 {
			return domain.Int(s)
		}
	}
	return domain.Float(a.Float64() + b.Float64())
}

func subtract(a, b domain.Number) domain.Number {
	x, okA := a.Int64()
	y, okB := b.Int64()
	if okA && okB {
		d := x - y
		if (x^y)&(x^d) >= 0 {
			return domain.Int(d)
		}
	}
	return domain.Float(a.Float64() - b.Float64())
}

func multiply(a, b domain.Number) domain.Number {
	x, okA := a.Int64()
	y, okB := b.Int64()
	if okA && okB {
		if x == 0 || y == 0 {
			return domain.Int(0)
		}
		p := x * y
		overflow := p/y != x ||
			(x == -1 && y == math.MinInt64) ||
			(y == -1 && x == math.MinInt64)
		if !overflow {
			return domain.Int(p)
		}
	}
	return domain.Float(a.Float64() * b.Float64())
}
