package config

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/config"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

// Set stores a value. The value parameter is greedy so prompts may contain
// spaces.
func Set(ctx context.Context, call descriptor.Call) error {
	return set(ctx, call, DefaultDeps())
}

func set(ctx context.Context, call descriptor.Call, deps Deps) error {
	env, err := envOf(call)
	if err != nil {
		return err
	}

	key, value := call.Args.String(0), call.Args.String(1)
	if _, err := deps.Update(env.ConfigPath, func(c *config.Config) error {
		return c.Set(key, value)
	}); err != nil {
		return err
	}

	_, err = fmt.Fprintf(domain.Output(ctx), "updated %s=%s\n", key, value)
	return err
}

// Reset restores a key to its built-in default.
func Reset(ctx context.Context, call descriptor.Call) error {
	return reset(ctx, call, DefaultDeps())
}

func reset(ctx context.Context, call descriptor.Call, deps Deps) error {
	env, err := envOf(call)
	if err != nil {
		return err
	}

	key := call.Args.String(0)
	def, ok := config.Default().Get(key)
	if !ok {
		return errors.Errorf("unknown config key %q", key)
	}

	if _, err := deps.Update(env.ConfigPath, func(c *config.Config) error {
		return c.Set(key, def)
	}); err != nil {
		return err
	}

	_, err = fmt.Fprintf(domain.Output(ctx), "reset %s=%s\n", key, def)
	return err
}
