// Package log is a small leveled logger used by the registry and the console.
//
// Output goes to a file (permissions 0600) or to any io.Writer. A process-wide
// default logger is installed by Init and reached through the package-level
// helpers; components that take a domain.Logger accept either a *Logger or
// NopLogger.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/domain"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

const timestampLayout = "2006-01-02 15:04:05"

// sink is the shared output of a logger and the loggers derived from it.
type sink struct {
	mu      sync.Mutex
	out     io.Writer
	closer  io.Closer
	enabled bool
}

// Logger writes leveled, timestamped lines. It is safe for concurrent use.
type Logger struct {
	sink     *sink
	minLevel Level
	name     string
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init installs the process-wide logger writing to logPath. Only the first
// call has any effect.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err != nil {
			return
		}
		defaultLoggerMu.Lock()
		defaultLogger = l
		defaultLoggerMu.Unlock()
	})
	return err
}

// New opens (or creates) logPath in append mode and returns a logger
// writing to it.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	// Tighten permissions on a pre-existing file before writing to it.
	if info, err := os.Stat(logPath); err == nil && info.Mode().Perm() != 0600 {
		if err := os.Chmod(logPath, 0600); err != nil {
			return nil, errors.Wrap(err, "chmod existing log file")
		}
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	return &Logger{
		sink:     &sink{out: file, closer: file, enabled: true},
		minLevel: minLevel,
	}, nil
}

// NewWriter returns a logger writing to w. Close does not close w.
func NewWriter(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		sink:     &sink{out: w, enabled: true},
		minLevel: minLevel,
	}
}

// Named returns a logger sharing l's output whose lines are tagged with
// name. Nested names are joined with a dot.
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Logger{sink: l.sink, minLevel: l.minLevel, name: name}
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil || l.sink.closer == nil {
		return nil
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.closer.Close()
}

// SetEnabled toggles output for l and every logger derived from it.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil || l.sink == nil {
		return
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || l.sink == nil || level < l.minLevel {
		return
	}

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if !l.sink.enabled {
		return
	}

	message := fmt.Sprintf(format, args...)
	var line string
	if l.name != "" {
		line = fmt.Sprintf("[%s] %s %s: %s\n", time.Now().Format(timestampLayout), level, l.name, message)
	} else {
		line = fmt.Sprintf("[%s] %s: %s\n", time.Now().Format(timestampLayout), level, message)
	}

	if _, err := io.WriteString(l.sink.out, line); err != nil && level >= LevelError {
		fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
	}
}

func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Writer returns an io.Writer that logs each write at level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.logger.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func current() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

func Debug(format string, args ...any) { current().Debug(format, args...) }
func Info(format string, args ...any)  { current().Info(format, args...) }
func Warn(format string, args ...any)  { current().Warn(format, args...) }
func Error(format string, args ...any) { current().Error(format, args...) }

// Close closes the process-wide logger.
func Close() error {
	return current().Close()
}

// GetLogger returns the process-wide logger, or nil before Init.
func GetLogger() *Logger {
	return current()
}

// Default returns the process-wide logger as a domain.Logger, falling back
// to NopLogger before Init.
func Default() domain.Logger {
	if l := current(); l != nil {
		return l
	}
	return NopLogger{}
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}
