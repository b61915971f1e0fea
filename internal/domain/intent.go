package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentEvaluate
	IntentHistory
	IntentLast
	IntentClearHistory
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentEvaluate:
		return "evaluate"
	case IntentHistory:
		return "history"
	case IntentLast:
		return "last"
	case IntentClearHistory:
		return "clear_history"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Request is an evaluation as typed by the user: a raw selector and two
// operands that have not been type-checked yet.
type Request struct {
	Selector string
	A, B     Value
	Input    string // original line, kept for history
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string   // optional context, e.g. the unparsed line
	Request *Request // set for IntentEvaluate
}
