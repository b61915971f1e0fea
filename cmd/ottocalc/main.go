// OttoCalc: a four-operation calculator with history.
//
// Usage:
//
//	ottocalc [flags] add 2 3      evaluate once and exit
//	ottocalc [flags] -- -3 + 1    negative first operand
//	ottocalc [flags] < exprs.txt  evaluate one expression per line
//	ottocalc [flags]              interactive prompt
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hammamikhairi/ottocalc/internal/calc"
	"github.com/hammamikhairi/ottocalc/internal/config"
	"github.com/hammamikhairi/ottocalc/internal/conversation"
	"github.com/hammamikhairi/ottocalc/internal/display"
	"github.com/hammamikhairi/ottocalc/internal/domain"
	"github.com/hammamikhairi/ottocalc/internal/engine"
	"github.com/hammamikhairi/ottocalc/internal/logger"
	"github.com/hammamikhairi/ottocalc/internal/storage"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load("ottocalc", args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	logOut, closeLog := openLog(cfg.LogFile, stderr)
	defer closeLog()

	// Route the standard log package to the same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Wire dependencies.
	store := storage.NewMemoryStore(cfg.HistoryLimit, log.Named("history"))
	dispatcher := calc.NewDispatcher(calc.WithBoolPolicy(cfg.BoolPolicy))
	eng := engine.New(dispatcher, store, log.Named("engine"))
	parser := conversation.NewKeywordParser(log.Named("parser"))

	log.Info("starting (bools=%s, history=%d)", cfg.BoolPolicy, cfg.HistoryLimit)

	app := &cliApp{
		engine: eng,
		parser: parser,
		log:    log,
	}

	switch {
	case len(cfg.Args) > 0:
		app.notifier = plainNotifier(log, stdout, stderr)
		return app.oneShot(ctx, strings.Join(cfg.Args, " "))
	case cfg.Plain || !display.IsInteractive():
		app.notifier = plainNotifier(log, stdout, stderr)
		return app.pipe(ctx, stdin)
	default:
		return app.interactive(ctx, store)
	}
}

// openLog returns the writer for logs and a function closing it. Logs go
// to a file by default so the prompt stays clean.
func openLog(path string, stderr io.Writer) (io.Writer, func()) {
	if path == "" || path == "stderr" {
		return stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(stderr, "warning: could not create log directory %s: %v (falling back to stderr)\n", dir, err)
			return stderr, func() {}
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return stderr, func() {}
	}
	return f, func() { f.Close() }
}

func plainNotifier(log *logger.Logger, stdout, stderr io.Writer) domain.Notifier {
	return conversation.NewPlainNotifier(log,
		func(format string, a ...interface{}) { fmt.Fprintf(stdout, format+"\n", a...) },
		func(format string, a ...interface{}) { fmt.Fprintf(stderr, format+"\n", a...) },
	)
}

// cliApp ties the parser, engine and output together.
type cliApp struct {
	engine   *engine.Engine
	parser   domain.LineParser
	notifier domain.Notifier
	log      *logger.Logger
	ui       *display.UI // nil outside interactive mode
}

func (a *cliApp) oneShot(ctx context.Context, line string) int {
	intent, err := a.parser.Parse(ctx, line)
	if err != nil {
		a.log.Error("parsing input: %v", err)
		return exitUsage
	}
	if intent.Type != domain.IntentEvaluate {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf("error: expected \"<op> <a> <b>\" or \"<a> <+-*/> <b>\", got %q", line))
		return exitUsage
	}
	if !a.evaluate(ctx, intent.Request) {
		return exitFailed
	}
	return exitOK
}

func (a *cliApp) pipe(ctx context.Context, r io.Reader) int {
	code := exitOK
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return exitFailed
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		intent, err := a.parser.Parse(ctx, line)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			code = exitFailed
			continue
		}
		if intent.Type == domain.IntentQuit {
			break
		}
		if !a.handleIntent(ctx, intent) {
			code = exitFailed
		}
	}
	if err := sc.Err(); err != nil {
		a.log.Error("reading input: %v", err)
		return exitFailed
	}
	return code
}

func (a *cliApp) interactive(ctx context.Context, store domain.HistoryStore) int {
	ui := display.NewUI(store)
	a.ui = ui
	a.notifier = conversation.NewCLINotifier(a.log, ui.Printf)

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ui.WaitReady()
		a.loop(ctx)
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		a.log.Error("ui: %v", err)
		return exitFailed
	}
	return exitOK
}

func (a *cliApp) loop(ctx context.Context) {
	uiCh := a.ui.InputChan()
	for {
		var input string
		select {
		case <-ctx.Done():
			return
		case <-a.ui.QuitChan():
			return
		case input = <-uiCh:
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}
		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if intent.Type == domain.IntentQuit {
			a.ui.PrintHint("Bye.")
			return
		}
		a.handleIntent(ctx, intent)
	}
}

// handleIntent runs one intent and reports whether it succeeded.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentEvaluate:
		return a.evaluate(ctx, intent.Request)
	case domain.IntentHistory:
		return a.showHistory(ctx)
	case domain.IntentLast:
		return a.showLast(ctx)
	case domain.IntentClearHistory:
		if err := a.engine.ClearHistory(ctx); err != nil {
			a.notifier.NotifyUrgent(ctx, fmt.Sprintf("error: %v", err))
			return false
		}
		a.notifier.Notify(ctx, "History cleared.")
		return true
	case domain.IntentHelp:
		a.showHelp(ctx)
		return true
	case domain.IntentQuit:
		return true
	default:
		if intent.Payload != "" {
			a.notifier.NotifyUrgent(ctx, fmt.Sprintf("Didn't understand %q. Type 'help' for commands.", intent.Payload))
			return false
		}
		return true
	}
}

func (a *cliApp) evaluate(ctx context.Context, req *domain.Request) bool {
	entry, err := a.engine.Evaluate(ctx, req)
	if err != nil {
		if entry == nil || domain.ErrorKind(err) == "" {
			a.log.Error("evaluate: %v", err)
		}
		a.notifier.NotifyUrgent(ctx, "error: "+err.Error())
		return false
	}
	if a.ui != nil {
		a.ui.PrintResult(entry.Result.String())
		return true
	}
	a.notifier.Notify(ctx, entry.Result.String())
	return true
}

func (a *cliApp) showHistory(ctx context.Context) bool {
	entries, err := a.engine.History(ctx)
	if err != nil {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf("error: %v", err))
		return false
	}
	if len(entries) == 0 {
		a.notifier.Notify(ctx, "History is empty.")
		return true
	}

	stats, err := a.engine.Stats(ctx)
	if err != nil {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf("error: %v", err))
		return false
	}
	header := fmt.Sprintf("History (%d, %d failed):", stats.Total, stats.Failed)
	if a.ui != nil {
		a.ui.PrintHeading(header)
		for i, e := range entries {
			line := fmt.Sprintf("%3d. %-24s %s", i+1, e.Input, e.Outcome())
			if e.Failed() {
				a.ui.PrintUrgent(line)
			} else {
				a.ui.PrintLine(line)
			}
		}
		return true
	}

	a.notifier.Notify(ctx, header)
	for i, e := range entries {
		a.notifier.Notify(ctx, fmt.Sprintf("%3d. %s = %s", i+1, e.Input, e.Outcome()))
	}
	return true
}

func (a *cliApp) showLast(ctx context.Context) bool {
	e, err := a.engine.Last(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		a.notifier.Notify(ctx, "History is empty.")
		return true
	}
	if err != nil {
		a.notifier.NotifyUrgent(ctx, fmt.Sprintf("error: %v", err))
		return false
	}
	line := fmt.Sprintf("%s = %s", e.Input, e.Outcome())
	if a.ui != nil {
		if e.Failed() {
			a.ui.PrintUrgent(line)
		} else {
			a.ui.PrintLine(line)
		}
		return true
	}
	a.notifier.Notify(ctx, line)
	return true
}

func (a *cliApp) showHelp(ctx context.Context) {
	lines := []string{
		"Commands:",
		"  add 2 3 / 2 + 3        Add two numbers",
		"  subtract 10 4 / 10 - 4 Subtract",
		"  multiply 3 3 / 3 * 3   Multiply (also: x, ×)",
		"  divide 10 4 / 10 / 4   Divide (true division, also: ÷)",
		"  history / h            Show evaluated expressions",
		"  last / ans             Show the most recent expression",
		"  clear                  Forget history",
		"  help                   Show this message",
		"  quit / exit            Exit",
	}
	if a.ui != nil {
		a.ui.PrintHeading(lines[0])
		for _, l := range lines[1:] {
			a.ui.PrintLine(l)
		}
		return
	}
	for _, l := range lines {
		a.notifier.Notify(ctx, l)
	}
}
