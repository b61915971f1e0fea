package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Notifier = (*CLINotifier)(nil)
	_ domain.Notifier = (*PlainNotifier)(nil)
)

// ANSI escape codes for terminal formatting.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLINotifier writes notifications with ANSI formatting.
type CLINotifier struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLINotifier creates a terminal notifier.
// If printFn is nil, fmt.Printf is used.
func NewCLINotifier(log *logger.Logger, printFn PrintFunc) *CLINotifier {
	return &CLINotifier{log: log, printFn: orStdout(printFn)}
}

// Notify prints a normal notification.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s%s%s%s", cyan, bold, message, reset)
	return nil
}

// NotifyUrgent prints an urgent notification in bold red.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.printFn("%s%s%s%s", red, bold, message, reset)
	return nil
}

// PlainNotifier writes notifications without escape codes, for pipes
// and one-shot mode where output is read by other programs.
type PlainNotifier struct {
	log     *logger.Logger
	printFn PrintFunc
	errFn   PrintFunc
}

// NewPlainNotifier creates a notifier printing results through out and
// urgent messages through errOut. Nil functions fall back to stdout.
func NewPlainNotifier(log *logger.Logger, out, errOut PrintFunc) *PlainNotifier {
	return &PlainNotifier{log: log, printFn: orStdout(out), errFn: orStdout(errOut)}
}

// Notify prints message as-is.
func (n *PlainNotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.printFn("%s", message)
	return nil
}

// NotifyUrgent prints message to the error output.
func (n *PlainNotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.errFn("%s", message)
	return nil
}

func orStdout(fn PrintFunc) PrintFunc {
	if fn != nil {
		return fn
	}
	return func(format string, a ...interface{}) {
		fmt.Printf(format+"\n", a...)
	}
}
