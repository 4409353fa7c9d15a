package logs

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

// DefaultLimit is the number of lines shown when none is requested.
const DefaultLimit = 50

// View shows the last N lines of the log file.
func View(ctx context.Context, call descriptor.Call) error {
	return view(ctx, call, DefaultDeps())
}

func view(ctx context.Context, call descriptor.Call, deps Deps) error {
	logPath, err := logPathOf(call)
	if err != nil {
		return err
	}
	out := domain.Output(ctx)

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		fmt.Fprintln(out, style.Muted("No log file found at "+logPath))
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "stat log file")
	}
	if info.Size() == 0 {
		fmt.Fprintln(out, style.Muted("Log file is empty"))
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return errors.Wrap(err, "read log file")
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")

	limit, ok := call.Args.Int(0)
	if !ok || limit <= 0 {
		limit = DefaultLimit
	}
	start := max(0, len(lines)-limit)

	for _, line := range lines[start:] {
		fmt.Fprintln(out, colorizeLogLine(line))
	}
	return nil
}

// Clear empties the log file.
func Clear(ctx context.Context, call descriptor.Call) error {
	return clearLog(ctx, call, DefaultDeps())
}

func clearLog(ctx context.Context, call descriptor.Call, deps Deps) error {
	logPath, err := logPathOf(call)
	if err != nil {
		return err
	}

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return errors.Wrap(err, "clear log file")
	}

	_, err = fmt.Fprintln(domain.Output(ctx), style.Success("Log file cleared"))
	return err
}

func logPathOf(call descriptor.Call) (string, error) {
	env, ok := call.Owner.(*actions.Env)
	if !ok || env == nil || env.LogPath == "" {
		return "", errors.Errorf("logs: no log file configured (owner %T)", call.Owner)
	}
	return env.LogPath, nil
}

// colorizeLogLine colors a line by its level. Lines look like
// "[timestamp] LEVEL: message" or "[timestamp] LEVEL name: message".
func colorizeLogLine(line string) string {
	switch {
	case strings.Contains(line, "] ERROR ") || strings.Contains(line, "] ERROR:"):
		return style.Error(line)
	case strings.Contains(line, "] WARN ") || strings.Contains(line, "] WARN:"):
		return style.Warning(line)
	case strings.Contains(line, "] INFO ") || strings.Contains(line, "] INFO:"):
		return style.Info(line)
	case strings.Contains(line, "] DEBUG ") || strings.Contains(line, "] DEBUG:"):
		return style.Muted(line)
	}
	return line
}
