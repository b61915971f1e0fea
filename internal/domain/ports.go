package domain

import "context"

// HistoryStore keeps evaluated entries in insertion order. Implementations
// can be in-memory, file-backed, or anything else.
type HistoryStore interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context) ([]*Entry, error)
	Last(ctx context.Context) (*Entry, error)
	Clear(ctx context.Context) error
}

// LineParser converts a raw input line into a structured intent.
type LineParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout or a terminal UI.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
