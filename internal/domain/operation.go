package domain

// Operation selects one of the four arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// Operations lists every recognized operation in declaration order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// String returns the operation's tag, e.g. "add".
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the recognized operations.
func (o Operation) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// operationTags maps exact tags to operations. Matching is case-sensitive.
var operationTags = map[string]Operation{
	"add":      OpAdd,
	"subtract": OpSubtract,
	"multiply": OpMultiply,
	"divide":   OpDivide,
}

// ParseOperation converts a textual selector into an Operation.
// Unrecognized selectors return an *UnknownOperationError.
func ParseOperation(selector string) (Operation, error) {
	if op, ok := operationTags[selector]; ok {
		return op, nil
	}
	return 0, &UnknownOperationError{Selector: selector}
}
