package calc

import (
	"fmt"
	"math"
	"reflect"

	"github.com/hammamikhairi/ottocalc/internal/domain"
)

// BoolPolicy decides what happens to boolean operands.
type BoolPolicy int

const (
	// BoolReject treats booleans as non-numeric.
	BoolReject BoolPolicy = iota
	// BoolAsInt accepts booleans as the integers 0 and 1.
	BoolAsInt
)

// String returns the policy name as used in configuration.
func (p BoolPolicy) String() string {
	switch p {
	case BoolReject:
		return "reject"
	case BoolAsInt:
		return "int"
	default:
		return "unknown"
	}
}

// ParseBoolPolicy converts "reject" or "int" into a BoolPolicy.
func ParseBoolPolicy(s string) (BoolPolicy, error) {
	switch s {
	case "reject", "":
		return BoolReject, nil
	case "int":
		return BoolAsInt, nil
	default:
		return BoolReject, fmt.Errorf("unknown bool policy %q (want reject or int)", s)
	}
}

// Dispatcher evaluates requests whose operands and selector have not been
// validated yet. It is immutable once built.
type Dispatcher struct {
	bools BoolPolicy
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBoolPolicy sets how boolean operands are handled.
func WithBoolPolicy(p BoolPolicy) Option {
	return func(d *Dispatcher) { d.bools = p }
}

// NewDispatcher creates a dispatcher. Booleans are rejected by default.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{bools: BoolReject}
	for _, o := range opts {
		o(d)
	}
	return d
}

// BoolPolicy returns the configured boolean policy.
func (d *Dispatcher) BoolPolicy() BoolPolicy { return d.bools }

// EvaluateRaw validates a and b, converts selector, and evaluates.
//
// Checks run in a fixed order: an operand type failure wins over an
// unknown selector, which in turn is reported before any arithmetic runs.
func (d *Dispatcher) EvaluateRaw(selector string, a, b domain.Value) (domain.Number, error) {
	x, ok := ToNumber(a, d.bools)
	if !ok {
		return domain.Number{}, &domain.OperandError{Position: "a", Value: a}
	}
	y, ok := ToNumber(b, d.bools)
	if !ok {
		return domain.Number{}, &domain.OperandError{Position: "b", Value: b}
	}

	op, err := domain.ParseOperation(selector)
	if err != nil {
		return domain.Number{}, err
	}
	return Evaluate(op, x, y)
}

// ToNumber converts v into a Number if its type is numeric. Every signed
// and unsigned integer kind is accepted, as are float32, float64 and Number
// itself. Named types with those underlying kinds count too. Unsigned values
// above math.MaxInt64 become floats. Strings are never parsed.
func ToNumber(v domain.Value, bools BoolPolicy) (domain.Number, bool) {
	switch x := v.(type) {
	case nil:
		return domain.Number{}, false
	case domain.Number:
		return x, true
	case int:
		return domain.Int(int64(x)), true
	case int64:
		return domain.Int(x), true
	case float64:
		return domain.Float(x), true
	case bool:
		return boolNumber(x, bools)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return domain.Int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return domain.Float(float64(u)), true
		}
		return domain.Int(int64(u)), true
	case reflect.Float32, reflect.Float64:
		return domain.Float(rv.Float()), true
	case reflect.Bool:
		return boolNumber(rv.Bool(), bools)
	default:
		return domain.Number{}, false
	}
}

func boolNumber(b bool, policy BoolPolicy) (domain.Number, bool) {
	if policy != BoolAsInt {
		return domain.Number{}, false
	}
	if b {
		return domain.Int(1), true
	}
	return domain.Int(0), true
}
