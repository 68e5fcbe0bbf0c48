// Package logging provides the leveled, structured logger injected into the
// forum client and wizard components. Diagnostics go through this interface
// rather than ad-hoc prints, so production builds silence them by level
// configuration instead of by omitting call sites.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry
type Level int

// Log levels in increasing severity
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a level name to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Fields holds structured key/value context attached to an entry
type Fields map[string]any

// Logger is the logging interface handed to each component
type Logger interface {
	Debug(message string, fields ...Fields)
	Info(message string, fields ...Fields)
	Warn(message string, fields ...Fields)
	Error(message string, fields ...Fields)

	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
}

// Options configures a writer-backed logger
type Options struct {
	Level  Level
	Format string // "text" or "json"
	Out    io.Writer
}

type writerLogger struct {
	mu     *sync.Mutex
	opts   Options
	bound  Fields
	nowFn  func() time.Time
	format func(w *writerLogger, level Level, message string, fields Fields)
}

// New creates a logger writing formatted entries to opts.Out
func New(opts Options) Logger {
	l := &writerLogger{
		mu:    &sync.Mutex{},
		opts:  opts,
		bound: Fields{},
		nowFn: time.Now,
	}
	if strings.EqualFold(opts.Format, "json") {
		l.format = writeJSON
	} else {
		l.format = writeText
	}
	return l
}

func (l *writerLogger) log(level Level, message string, fields []Fields) {
	if level < l.opts.Level || l.opts.Out == nil {
		return
	}
	merged := Fields{}
	for k, v := range l.bound {
		merged[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.format(l, level, message, merged)
}

func (l *writerLogger) Debug(message string, fields ...Fields) { l.log(DebugLevel, message, fields) }
func (l *writerLogger) Info(message string, fields ...Fields)  { l.log(InfoLevel, message, fields) }
func (l *writerLogger) Warn(message string, fields ...Fields)  { l.log(WarnLevel, message, fields) }
func (l *writerLogger) Error(message string, fields ...Fields) { l.log(ErrorLevel, message, fields) }

func (l *writerLogger) WithField(key string, value any) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *writerLogger) WithFields(fields Fields) Logger {
	bound := Fields{}
	for k, v := range l.bound {
		bound[k] = v
	}
	for k, v := range fields {
		bound[k] = v
	}
	clone := *l
	clone.bound = bound
	return &clone
}

//nolint:errcheck // log sink write failures are not recoverable
func writeText(l *writerLogger, level Level, message string, fields Fields) {
	ts := l.nowFn().Format("2006-01-02T15:04:05.000Z07:00")
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%s] %s", ts, strings.ToUpper(level.String()), message)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, fields[k])
	}
	fmt.Fprintln(l.opts.Out, sb.String())
}

//nolint:errcheck // log sink write failures are not recoverable
func writeJSON(l *writerLogger, level Level, message string, fields Fields) {
	entry := map[string]any{
		"level":   level.String(),
		"message": message,
		"time":    l.nowFn().Format(time.RFC3339),
	}
	for k, v := range fields {
		entry[k] = v
	}
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.opts.Out, `{"level":"error","message":"log marshal failed: %v"}`+"\n", err)
		return
	}
	fmt.Fprintln(l.opts.Out, string(data))
}

type nopLogger struct{}

// Nop returns a logger that discards everything. It is the default wherever
// no logger is injected, and keeps tests quiet.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...Fields)        {}
func (nopLogger) Info(string, ...Fields)         {}
func (nopLogger) Warn(string, ...Fields)         {}
func (nopLogger) Error(string, ...Fields)        {}
func (n nopLogger) WithField(string, any) Logger { return n }
func (n nopLogger) WithFields(Fields) Logger     { return n }
