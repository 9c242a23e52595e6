package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("mode", "print"), "mode", "print"},
		{"Int", Int("n", 11), "n", 11},
		{"Uint64", Uint64("bits", 1<<40), "bits", uint64(1 << 40)},
		{"Float64", Float64("ms", 0.5), "ms", 0.5},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key || tt.field.Value != tt.value {
				t.Errorf("got %+v, want {%s %v}", tt.field, tt.key, tt.value)
			}
		})
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Debug("starting", Int("n", 11))
	logger.Info("generated", Int("terms", 11), String("component", "app"))
	logger.Error("write failed", errors.New("broken pipe"), Int("attempt", 1))

	out := buf.String()
	for _, want := range []string{
		`"level":"debug"`, `"n":11`,
		`"level":"info"`, `"terms":11`,
		`"level":"error"`, `"error":"broken pipe"`, `"attempt":1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestZerologAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Info("hidden")
	logger.Debug("hidden too")
	if buf.Len() != 0 {
		t.Errorf("info/debug should be filtered at warn level, got: %s", buf.String())
	}
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"int64", Field{Key: "v", Value: int64(-9)}, `"v":-9`},
		{"bool", Field{Key: "v", Value: true}, `"v":true`},
		{"error", Field{Key: "v", Value: errors.New("oops")}, `"v":"oops"`},
		{"struct", Field{Key: "v", Value: struct{ X int }{X: 7}}, `"X":7`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("msg", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %s should contain %s", buf.String(), tt.contains)
			}
		})
	}
}

func TestNewLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "fibonacci")
	logger.Info("done", Uint64("bits", 6), Float64("elapsed_ms", 0.25))

	out := buf.String()
	for _, want := range []string{`"component":"fibonacci"`, `"bits":6`, `"elapsed_ms":0.25`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewConsoleLogger_NoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "app", zerolog.InfoLevel)
	logger.Info("hello", Int("n", 3))

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("console output to a buffer should not be coloured: %q", out)
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "n=3") {
		t.Errorf("unexpected console output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.WarnLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Debug("trace", Int("line", 42))
	adapter.Info("ready", String("user", "bob"))
	adapter.Error("failed", errors.New("boom"), String("stage", "print"))

	out := buf.String()
	for _, want := range []string{
		"[DEBUG] trace line=42",
		"[INFO] ready user=bob",
		"[ERROR] failed error=boom stage=print",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAdaptersImplementLogger(t *testing.T) {
	var _ Logger = NewLogger(&bytes.Buffer{}, "x")
	var _ Logger = NewStdLoggerAdapter(log.New(&bytes.Buffer{}, "", 0))
}
