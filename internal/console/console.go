// Package console is the interactive front end of a command registry.
//
// Lines are read either from a bubbletea prompt (Interactive) or from any
// io.Reader (RunLines). Each line is handed to the registry; usage errors are
// rendered with their suggestions instead of aborting the session. The
// words "help", "exit" and "quit" are handled by the console itself.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/log"
	"github.com/footprint-tools/cobalt/internal/ui/style"
	"github.com/footprint-tools/cobalt/internal/usage"
)

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "cobalt> "

// Dispatcher is the part of a registry the console drives.
type Dispatcher interface {
	Execute(ctx context.Context, line string) error
	Help(line string) (string, error)
	Names() []string
}

// Console runs input lines against a Dispatcher.
type Console struct {
	dispatcher Dispatcher
	prompt     string
	history    *History
	logger     domain.Logger
	styler     domain.Styler
}

// Option configures a Console.
type Option func(*Console)

// WithPrompt sets the prompt shown before each line.
func WithPrompt(prompt string) Option {
	return func(c *Console) {
		if prompt != "" {
			c.prompt = prompt
		}
	}
}

// WithHistorySize bounds the number of remembered lines.
func WithHistorySize(n int) Option {
	return func(c *Console) {
		c.history = NewHistory(n)
	}
}

// WithStyler sets how errors are rendered. Defaults to the global style.
func WithStyler(styler domain.Styler) Option {
	return func(c *Console) {
		c.styler = styler
	}
}

// WithLogger sets the logger used for dispatch failures.
func WithLogger(logger domain.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// New returns a console over d.
func New(d Dispatcher, opts ...Option) *Console {
	c := &Console{
		dispatcher: d,
		prompt:     DefaultPrompt,
		history:    NewHistory(500),
		logger:     log.NopLogger{},
		styler:     style.NewStyler(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History returns the console's input history.
func (c *Console) History() *History {
	return c.history
}

// Handle runs one input line. Command output, installed in the context
// with domain.WithOutput, and usage errors are written to out. quit is true
// when the line asks the console to stop. err is the dispatch error, already
// rendered to out.
func (c *Console) Handle(ctx context.Context, line string, out io.Writer) (quit bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return false, nil
	}

	word, rest := splitWord(line)
	switch strings.ToLower(word) {
	case "exit", "quit":
		return true, nil
	case "help":
		text, err := c.dispatcher.Help(rest)
		if err != nil {
			c.report(out, err)
			return false, err
		}
		fmt.Fprint(out, text)
		return false, nil
	}

	if err := c.dispatcher.Execute(domain.WithOutput(ctx, out), line); err != nil {
		c.logger.Info("console: %q: %v", line, err)
		c.report(out, err)
		return false, err
	}
	return false, nil
}

// RunLines reads lines from in until EOF, an exit line, or ctx is done.
// It returns the last dispatch error, or the read error if reading failed.
func (c *Console) RunLines(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var last error

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := c.Handle(ctx, scanner.Text(), out)
		if err != nil {
			last = err
		}
		if quit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return last
}

// report renders err for the user. Usage errors carry their own message
// and suggestions; anything else is a handler failure.
func (c *Console) report(out io.Writer, err error) {
	var ue *usage.Error
	if errors.As(err, &ue) {
		fmt.Fprintln(out, c.styler.Error(ue.Message))
		return
	}
	fmt.Fprintln(out, c.styler.Error("error: "+err.Error()))
}

func splitWord(line string) (string, string) {
	trimmed := strings.TrimSpace(line)
	word, rest, _ := strings.Cut(trimmed, " ")
	return word, strings.TrimSpace(rest)
}
