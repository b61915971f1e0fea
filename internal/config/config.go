// Package config loads runtime settings from a .env file, the
// environment, and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/ottocalc/internal/calc"
	"github.com/hammamikhairi/ottocalc/internal/logger"
)

// Env var names.
const (
	EnvLogLevel     = "OTTOCALC_LOG_LEVEL"
	EnvBoolPolicy   = "OTTOCALC_BOOL_POLICY"
	EnvHistoryLimit = "OTTOCALC_HISTORY_LIMIT"
	EnvLogFile      = "OTTOCALC_LOG_FILE"
)

// Defaults.
const (
	DefaultLogFile      = ".ottocalc-logs/ottocalc.log"
	DefaultHistoryLimit = 1000
)

// Config holds everything the binary needs to wire itself.
type Config struct {
	LogLevel     logger.Level
	LogFile      string // "stderr" logs to the console
	BoolPolicy   calc.BoolPolicy
	HistoryLimit int  // 0 keeps everything
	Plain        bool // force pipe mode even on a terminal
	Args         []string
}

// Getenv looks up an environment variable. Swapped out in tests.
type Getenv func(string) string

// Load reads .env (if present) into the process environment and then
// parses args. args excludes the program name.
func Load(name string, args []string, stderr io.Writer) (*Config, error) {
	_ = godotenv.Load()
	return Parse(name, args, os.Getenv, stderr)
}

// Parse builds a Config from getenv defaults overridden by args.
func Parse(name string, args []string, getenv Getenv, stderr io.Writer) (*Config, error) {
	cfg := &Config{
		LogLevel:     logger.LevelNormal,
		LogFile:      DefaultLogFile,
		BoolPolicy:   calc.BoolReject,
		HistoryLimit: DefaultHistoryLimit,
	}

	if v := getenv(EnvLogLevel); v != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v := getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := getenv(EnvBoolPolicy); v != "" {
		p, err := calc.ParseBoolPolicy(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvBoolPolicy, err)
		}
		cfg.BoolPolicy = p
	}
	if v := getenv(EnvHistoryLimit); v != "" {
		n, err := parseLimit(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvHistoryLimit, err)
		}
		cfg.HistoryLimit = n
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if stderr != nil {
		fs.SetOutput(stderr)
	}
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")
	logFile := fs.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	bools := fs.String("bools", cfg.BoolPolicy.String(), "boolean operands: reject or int (true=1, false=0)")
	history := fs.Int("history", cfg.HistoryLimit, "max history entries to keep (0 = unlimited)")
	plain := fs.Bool("plain", false, "read expressions from stdin line by line, no interactive UI")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if *quiet {
		cfg.LogLevel = logger.LevelOff
	}
	cfg.LogFile = *logFile

	p, err := calc.ParseBoolPolicy(*bools)
	if err != nil {
		return nil, fmt.Errorf("-bools: %w", err)
	}
	cfg.BoolPolicy = p

	if *history < 0 {
		return nil, errors.New("-history: must be >= 0")
	}
	cfg.HistoryLimit = *history
	cfg.Plain = *plain
	cfg.Args = fs.Args()
	return cfg, nil
}

func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid history limit %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("history limit must be >= 0, got %d", n)
	}
	return n, nil
}
