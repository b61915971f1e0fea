package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("debug line written at normal level")
	}
	if !strings.Contains(buf.String(), "[INF] ") || !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("info line missing: %q", buf.String())
	}

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("nope")
	if buf.Len() != 0 {
		t.Fatalf("expected no output when off, got %q", buf.String())
	}
}

func TestNamedSharesLevel(t *testing.T) {
	var buf bytes.Buffer
	root := New(LevelNormal, &buf)
	child := root.Named("engine").Named("history")

	child.Warn("full")
	if !strings.Contains(buf.String(), "engine: history: full") {
		t.Fatalf("expected nested prefix, got %q", buf.String())
	}

	root.SetLevel(LevelVerbose)
	if child.GetLevel() != LevelVerbose {
		t.Fatal("child did not see level change")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"QUIET", LevelOff, false},
		{"", LevelNormal, false},
		{"info", LevelNormal, false},
		{" Verbose ", LevelVerbose, false},
		{"debug", LevelVerbose, false},
		{"loud", LevelNormal, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
		if !tt.wantErr && tt.in != "" {
			if back, _ := ParseLevel(got.String()); back != got {
				t.Errorf("round trip %s -> %s", got, back)
			}
		}
	}
}
