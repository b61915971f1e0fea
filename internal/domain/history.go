package domain

import "time"

// Entry is one recorded evaluation, successful or not.
type Entry struct {
	ID        string
	Input     string
	Selector  string
	Result    Number // zero value when Err is set
	Err       error
	Evaluated time.Time
}

// Failed reports whether the evaluation returned an error.
func (e *Entry) Failed() bool { return e.Err != nil }

// Outcome returns the result or the error text.
func (e *Entry) Outcome() string {
	if e.Err != nil {
		return "error: " + e.Err.Error()
	}
	return e.Result.String()
}
