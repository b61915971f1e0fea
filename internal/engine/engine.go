// Package engine runs evaluation requests and keeps their history.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hammamikhairi/ottocalc/internal/calc"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithIDGenerator overrides how entry IDs are created.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) {
		e.newID = gen
	}
}

// Engine evaluates requests through the dispatcher and records every
// outcome in the history store. It depends only on interfaces and is
// fully testable with mocks.
type Engine struct {
	dispatcher *calc.Dispatcher
	store      domain.HistoryStore
	log        *logger.Logger
	now        func() time.Time
	newID      func() string
}

// New creates an engine with the given dependencies and options.
func New(dispatcher *calc.Dispatcher, store domain.HistoryStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		dispatcher: dispatcher,
		store:      store,
		log:        log,
		now:        time.Now,
		newID:      generateID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs req and records the entry. The returned error is the
// dispatcher's own, unwrapped, so callers can match it with errors.Is.
// The entry is returned in both cases.
//
// A history write failure is logged but does not fail the evaluation.
func (e *Engine) Evaluate(ctx context.Context, req *domain.Request) (*domain.Entry, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}

	result, evalErr := e.dispatcher.EvaluateRaw(req.Selector, req.A, req.B)

	entry := &domain.Entry{
		ID:        e.newID(),
		Input:     req.Input,
		Selector:  req.Selector,
		Result:    result,
		Err:       evalErr,
		Evaluated: e.now(),
	}
	if entry.Input == "" {
		entry.Input = fmt.Sprintf("%s %v %v", req.Selector, req.A, req.B)
	}

	if evalErr != nil {
		e.log.Debug("evaluate %q failed (%s): %v", entry.Input, domain.ErrorKind(evalErr), evalErr)
	} else {
		e.log.Debug("evaluate %q = %s", entry.Input, result)
	}

	if err := e.store.Append(ctx, entry); err != nil {
		e.log.Warn("recording history entry %s: %v", entry.ID, err)
	}
	return entry, evalErr
}

// History returns every recorded entry, oldest first.
func (e *Engine) History(ctx context.Context) ([]*domain.Entry, error) {
	entries, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return entries, nil
}

// Last returns the most recent entry, or domain.ErrNotFound.
func (e *Engine) Last(ctx context.Context) (*domain.Entry, error) {
	entry, err := e.store.Last(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading last entry: %w", err)
	}
	return entry, nil
}

// ClearHistory forgets every recorded entry.
func (e *Engine) ClearHistory(ctx context.Context) error {
	if err := e.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	e.log.Info("history cleared")
	return nil
}

// Stats summarizes the recorded history.
type Stats struct {
	Total    int
	Failed   int
	ByKind   map[string]int // error kind -> count
	LastSeen time.Time
}

// Stats counts successes and failures in the history.
func (e *Engine) Stats(ctx context.Context) (Stats, error) {
	entries, err := e.History(ctx)
	if err != nil {
		return Stats{}, err
	}
	s := Stats{Total: len(entries), ByKind: make(map[string]int)}
	for _, en := range entries {
		if en.Failed() {
			s.Failed++
			s.ByKind[domain.ErrorKind(en.Err)]++
		}
		if en.Evaluated.After(s.LastSeen) {
			s.LastSeen = en.Evaluated
		}
	}
	return s, nil
}
