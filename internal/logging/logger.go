package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the logging surface the application depends on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
}

// Field is a single structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a field under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// ─────────────────────────────────────────────────────────────────────────────
// zerolog backend
// ─────────────────────────────────────────────────────────────────────────────

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger returns a JSON logger writing to w, tagged with a component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewConsoleLogger returns a human-readable logger writing to w at the given
// level. Colour is enabled only when w is a terminal.
func NewConsoleLogger(w io.Writer, component string, level zerolog.Level) *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// ParseLevel converts a level name ("debug", "info", "warn", ...) into a
// zerolog.Level. An empty name means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Debug logs a debug-level message.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	z.applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Info logs an info-level message.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	z.applyFields(z.logger.Info(), fields).Msg(msg)
}

// Error logs an error-level message with its cause.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	z.applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

func (z *ZerologAdapter) applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		case fmt.Stringer:
			event = event.Stringer(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// ─────────────────────────────────────────────────────────────────────────────
// standard library backend
// ─────────────────────────────────────────────────────────────────────────────

// StdLoggerAdapter implements Logger on top of a *log.Logger.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// Debug logs a message prefixed with [DEBUG].
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Println("[DEBUG]", msg+formatFields(fields))
}

// Info logs a message prefixed with [INFO].
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Println("[INFO]", msg+formatFields(fields))
}

// Error logs a message prefixed with [ERROR] together with its cause.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	s.logger.Println("[ERROR]", msg+formatFields(append([]Field{Err(err)}, fields...)))
}

func formatFields(fields []Field) string {
	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
	}
	return b.String()
}
