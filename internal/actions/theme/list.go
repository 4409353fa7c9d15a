package theme

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

func List(ctx context.Context, call descriptor.Call) error {
	return list(ctx, call, DefaultDeps())
}

func list(ctx context.Context, call descriptor.Call, deps Deps) error {
	env, ok := call.Owner.(*actions.Env)
	if !ok || env == nil {
		return errors.Errorf("theme list: unexpected owner %T", call.Owner)
	}

	cfg, err := deps.Load(env.ConfigPath)
	if err != nil {
		return err
	}
	current := deps.ResolveFor(cfg.Theme)

	names := make([]string, 0, len(deps.Themes))
	for name := range deps.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := domain.Output(ctx)
	fmt.Fprintln(out, "Available themes (* = current)")
	fmt.Fprintln(out)
	for _, name := range names {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}
		fmt.Fprintf(out, "%s%-14s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'theme set <name>' to change")
	return nil
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("prompt>", cfg.Prompt)
}
