package conversation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/hammamikhairi/ottocalc/internal/calc"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

func TestKeywordParserCommands(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input    string
		wantType domain.IntentType
	}{
		// History
		{"history", domain.IntentHistory},
		{"h", domain.IntentHistory},
		{"HIST", domain.IntentHistory},

		// Clear
		{"clear", domain.IntentClearHistory},
		{"clear history", domain.IntentClearHistory},
		{"reset", domain.IntentClearHistory},

		// Last
		{"last", domain.IntentLast},
		{"ans", domain.IntentLast},

		// Help
		{"help", domain.IntentHelp},
		{"?", domain.IntentHelp},

		// Quit
		{"quit", domain.IntentQuit},
		{"exit", domain.IntentQuit},
		{"q", domain.IntentQuit},

		// Unknown
		{"", domain.IntentUnknown},
		{"what is two plus two", domain.IntentUnknown},
		{"add 2", domain.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
		})
	}
}

func TestKeywordParserEvaluate(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input    string
		selector string
		a, b     domain.Value
	}{
		// Prefix form, selector passed through verbatim.
		{"add 2 3", "add", int64(2), int64(3)},
		{"divide 10 0", "divide", int64(10), int64(0)},
		{"modulo 10 3", "modulo", int64(10), int64(3)},
		{"Add 1 1", "Add", int64(1), int64(1)},

		// Infix form.
		{"10 - 4", "subtract", int64(10), int64(4)},
		{"3 * 3", "multiply", int64(3), int64(3)},
		{"3 x 3", "multiply", int64(3), int64(3)},
		{"7 ÷ 2", "divide", int64(7), int64(2)},
		{"-1.5 + 2", "add", -1.5, int64(2)},

		// Operand literals.
		{"add x 3", "add", "x", int64(3)},
		{"multiply + 2", "multiply", "+", int64(2)},
		{"foo + 3", "add", "foo", int64(3)},
		{"add one 3", "add", "one", int64(3)},
		{"add true 3", "add", true, int64(3)},
		{"add inf 1", "add", "inf", int64(1)},
		{"add 1e3 1", "add", 1000.0, int64(1)},
		{"  add   2   3  ", "add", int64(2), int64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != domain.IntentEvaluate {
				t.Fatalf("got type %s, want evaluate", intent.Type)
			}
			req := intent.Request
			if req.Selector != tt.selector {
				t.Errorf("selector: got %q, want %q", req.Selector, tt.selector)
			}
			if !reflect.DeepEqual(req.A, tt.a) {
				t.Errorf("a: got %#v, want %#v", req.A, tt.a)
			}
			if !reflect.DeepEqual(req.B, tt.b) {
				t.Errorf("b: got %#v, want %#v", req.B, tt.b)
			}
			if req.Input != strings.TrimSpace(tt.input) {
				t.Errorf("input: got %q", req.Input)
			}
		})
	}
}

func TestOperationTagKeepsPrefixForm(t *testing.T) {
	parser := NewKeywordParser(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	intent, err := parser.Parse(ctx, "add x 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := intent.Request
	_, err = calc.NewDispatcher().EvaluateRaw(req.Selector, req.A, req.B)

	var oe *domain.OperandError
	if !errors.As(err, &oe) {
		t.Fatalf("expected *OperandError, got %v", err)
	}
	if oe.Position != "a" || oe.Value != "x" {
		t.Errorf("got position=%q value=%#v, want a and \"x\"", oe.Position, oe.Value)
	}
}

func TestParseOperand(t *testing.T) {
	tests := []struct {
		tok  string
		want domain.Value
	}{
		{"0", int64(0)},
		{"-42", int64(-42)},
		{"3.25", 3.25},
		{"99999999999999999999", 1e20},
		{"1e999", math.Inf(1)},
		{"-1e999", math.Inf(-1)},
		{"NaN", "NaN"},
		{"false", false},
		{"True", "True"},
		{"12abc", "12abc"},
	}

	for _, tt := range tests {
		got := ParseOperand(tt.tok)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseOperand(%q) = %#v, want %#v", tt.tok, got, tt.want)
		}
	}
}

func TestPlainNotifier(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	var out, errOut []string
	n := NewPlainNotifier(log,
		func(format string, a ...interface{}) { out = append(out, fmt.Sprintf(format, a...)) },
		func(format string, a ...interface{}) { errOut = append(errOut, fmt.Sprintf(format, a...)) },
	)

	n.Notify(context.Background(), "5")
	n.NotifyUrgent(context.Background(), "division by zero")

	if len(out) != 1 || out[0] != "5" {
		t.Fatalf("unexpected stdout: %v", out)
	}
	if len(errOut) != 1 || errOut[0] != "division by zero" {
		t.Fatalf("unexpected stderr: %v", errOut)
	}
}
