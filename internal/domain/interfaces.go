// Package domain holds the small contracts shared by the registry, the
// console and the command handlers.
package domain

// Logger is a leveled printf-style logger. log.Logger and log.NopLogger
// implement it.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// Styler renders text by meaning. With styling off every method returns
// its input.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}
