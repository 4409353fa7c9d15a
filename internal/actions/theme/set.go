package theme

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/config"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

func Set(ctx context.Context, call descriptor.Call) error {
	return setTheme(ctx, call, DefaultDeps())
}

func setTheme(ctx context.Context, call descriptor.Call, deps Deps) error {
	env, ok := call.Owner.(*actions.Env)
	if !ok || env == nil {
		return errors.Errorf("theme set: unexpected owner %T", call.Owner)
	}

	name := call.Args.String(0)
	if _, known := deps.Themes[name]; !known && !slices.Contains(deps.BaseNames, name) {
		return errors.Errorf("unknown theme: %s (available: %s)", name, strings.Join(deps.BaseNames, ", "))
	}

	if _, err := deps.Update(env.ConfigPath, func(c *config.Config) error {
		return c.Set("theme", name)
	}); err != nil {
		return err
	}

	// Restyle the running session.
	if deps.Enabled() {
		deps.Apply(true, name)
	}

	_, err := fmt.Fprintf(domain.Output(ctx), "theme set to %s\n", style.Success(name))
	return err
}
