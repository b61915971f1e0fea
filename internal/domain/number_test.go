package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNumberString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{Int(5), "5"},
		{Int(-12), "-12"},
		{Float(5), "5.0"},
		{Float(-0.5), "-0.5"},
		{Float(1e21), "1e+21"},
		{Float(math.Inf(1)), "+Inf"},
		{Number{}, "0"},
	}

	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNumberEqualRespectsKind(t *testing.T) {
	if Int(5).Equal(Float(5)) {
		t.Fatal("int 5 should not equal float 5")
	}
	if !Float(0).Equal(Float(math.Copysign(0, -1))) {
		t.Fatal("0.0 should equal -0.0")
	}
	if Float(math.NaN()).Equal(Float(math.NaN())) {
		t.Fatal("NaN should not equal itself")
	}
}

func TestNumberIsZero(t *testing.T) {
	for _, n := range []Number{Int(0), Float(0), Float(math.Copysign(0, -1)), {}} {
		if !n.IsZero() {
			t.Errorf("%s: expected zero", n)
		}
	}
	if Float(math.SmallestNonzeroFloat64).IsZero() {
		t.Error("smallest float is not zero")
	}
}

func TestParseOperation(t *testing.T) {
	for _, op := range Operations {
		got, err := ParseOperation(op.String())
		if err != nil {
			t.Fatalf("parse %s: %v", op, err)
		}
		if got != op {
			t.Fatalf("parse %s: got %s", op, got)
		}
	}

	_, err := ParseOperation("Divide")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
	var uoe *UnknownOperationError
	if !errors.As(err, &uoe) || uoe.Selector != "Divide" {
		t.Fatalf("expected selector Divide, got %v", err)
	}
}

func TestOperationValid(t *testing.T) {
	for _, op := range Operations {
		if !op.Valid() {
			t.Errorf("%s should be valid", op)
		}
	}
	for _, op := range []Operation{Operation(-1), Operation(len(Operations) + 1), Operation(42)} {
		if op.Valid() {
			t.Errorf("Operation(%d) should not be valid", int(op))
		}
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&OperandError{Position: "a", Value: "x"}, "invalid_operand_type"},
		{ErrDivisionByZero, "division_by_zero"},
		{&UnknownOperationError{Selector: "pow"}, "unknown_operation"},
		{ErrNotFound, ""},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
