package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger is the small structured logging interface used across the service.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger carrying the given fields on every entry.
	With(fields ...Field) Logger
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// JSONLogger writes one JSON object per line through slog.
type JSONLogger struct {
	base      *slog.Logger
	component string
}

// NewLogger creates a JSONLogger writing to stdout. Debug entries are
// dropped unless debug is true.
func NewLogger(component string, debug bool) *JSONLogger {
	return NewLoggerTo(os.Stdout, component, debug)
}

// NewLoggerTo creates a JSONLogger writing to w.
func NewLoggerTo(w io.Writer, component string, debug bool) *JSONLogger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &JSONLogger{base: slog.New(h), component: component}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, slog.String(f.Key, err.Error()))
			continue
		}
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

func (l *JSONLogger) log(level slog.Level, msg string, fields []Field) {
	if !l.base.Enabled(context.Background(), level) {
		return
	}
	args := attrs(fields)
	if l.component != "" {
		args = append([]any{slog.String("component", l.component)}, args...)
	}
	l.base.Log(context.Background(), level, msg, args...)
}

func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(slog.LevelError, msg, fields)
}

// With returns a child logger. A "component" field renames the child
// instead of being repeated on every entry.
func (l *JSONLogger) With(fields ...Field) Logger {
	child := &JSONLogger{component: l.component}
	rest := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Key == "component" {
			if s, ok := f.Value.(string); ok {
				child.component = s
				continue
			}
		}
		rest = append(rest, f)
	}
	child.base = l.base.With(attrs(rest)...)
	return child
}

// Nop discards everything. Handy in tests.
type Nop struct{}

func (Nop) Debug(string, ...Field) {}
func (Nop) Info(string, ...Field)  {}
func (Nop) Warn(string, ...Field)  {}
func (Nop) Error(string, ...Field) {}
func (n Nop) With(...Field) Logger { return n }
