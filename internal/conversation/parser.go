// Package conversation provides line parsing and user notification implementations.
package conversation

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface check.
var _ domain.LineParser = (*KeywordParser)(nil)

// KeywordParser matches commands by keyword and splits everything else
// into an evaluation request. It never validates operands or selectors;
// that is the dispatcher's job, so its errors reach the user unchanged.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// symbolTags maps infix symbols to operation tags.
var symbolTags = map[string]string{
	"+": "add",
	"-": "subtract",
	"*": "multiply",
	"x": "multiply",
	"×": "multiply",
	"/": "divide",
	"÷": "divide",
}

// NewKeywordParser creates a keyword-based line parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(history|hist|h)$`), domain.IntentHistory},
		{regexp.MustCompile(`(?i)^(clear|reset|forget)( history)?$`), domain.IntentClearHistory},
		{regexp.MustCompile(`(?i)^(last|ans)$`), domain.IntentLast},
		{regexp.MustCompile(`(?i)^(help|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts a line into an intent. Recognized forms:
//
//	<selector> <a> <b>   e.g. "add 2 3", "power 2 3"
//	<a> <symbol> <b>     e.g. "10 / 4", "3 x 3"
//
// A line whose first token is an operation tag is always the prefix form.
// The history, last, clear, help and quit commands are matched first.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	fields := strings.Fields(trimmed)
	if len(fields) != 3 {
		p.log.Debug("no match, returning unknown intent")
		return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
	}

	req := &domain.Request{Input: trimmed}
	if tag, ok := symbolTags[fields[1]]; ok && !isOperationTag(fields[0]) {
		req.Selector = tag
		req.A, req.B = ParseOperand(fields[0]), ParseOperand(fields[2])
	} else {
		req.Selector = fields[0]
		req.A, req.B = ParseOperand(fields[1]), ParseOperand(fields[2])
	}

	p.log.Debug("evaluate request: selector=%q a=%#v b=%#v", req.Selector, req.A, req.B)
	return &domain.Intent{Type: domain.IntentEvaluate, Payload: trimmed, Request: req}, nil
}

// isOperationTag reports whether tok names an operation, so "add x 3"
// stays a prefix expression instead of "add" times 3.
func isOperationTag(tok string) bool {
	_, err := domain.ParseOperation(tok)
	return err == nil
}

// ParseOperand turns a literal token into a typed value: int64 for
// integers, float64 for decimals, bool for true/false. Anything else is
// returned as the original string so the dispatcher can reject it.
// Integers too large for int64 become float64; decimals outside the
// float64 range become ±Inf.
func ParseOperand(tok string) domain.Value {
	switch tok {
	case "true":
		return true
	case "false":
		return false
	}
	if !strings.ContainsFunc(tok, unicode.IsDigit) {
		// Keeps words like "inf" and "nan" out of ParseFloat.
		return tok
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return f
	}
	return tok
}
