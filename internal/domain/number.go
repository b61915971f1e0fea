// Package domain defines the core types and interfaces for the calculator.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"math"
	"strconv"
	"strings"
)

// Kind tells which variant a Number holds.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
)

// String returns a human-readable kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Number is a closed numeric variant: either an exact integer or a float.
// The zero value is the integer 0.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// Value is an operand as it arrives from outside the type system, before
// it has been checked and converted into a Number.
type Value = any

// Int returns an integer Number.
func Int(v int64) Number { return Number{kind: KindInt, i: v} }

// Float returns a floating-point Number.
func Float(v float64) Number { return Number{kind: KindFloat, f: v} }

// Kind returns the variant held by n.
func (n Number) Kind() Kind { return n.kind }

// Int64 returns the integer value and true, or 0 and false for floats.
func (n Number) Int64() (int64, bool) {
	if n.kind != KindInt {
		return 0, false
	}
	return n.i, true
}

// Float64 returns n as a float64, converting integers.
func (n Number) Float64() float64 {
	if n.kind == KindInt {
		return float64(n.i)
	}
	return n.f
}

// IsZero reports whether n is exactly zero. Negative zero counts.
func (n Number) IsZero() bool {
	if n.kind == KindInt {
		return n.i == 0
	}
	return n.f == 0
}

// Equal reports whether n and o hold the same variant and value.
// NaN is never equal to anything, itself included.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	if n.kind == KindInt {
		return n.i == o.i
	}
	return n.f == o.f
}

// String formats integers plainly and always gives floats a fractional
// part or exponent, so 5 and 5.0 stay distinguishable.
func (n Number) String() string {
	if n.kind == KindInt {
		return strconv.FormatInt(n.i, 10)
	}
	if math.IsInf(n.f, 0) || math.IsNaN(n.f) {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
