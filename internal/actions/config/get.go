package config

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

func Get(ctx context.Context, call descriptor.Call) error {
	return get(ctx, call, DefaultDeps())
}

func get(ctx context.Context, call descriptor.Call, deps Deps) error {
	env, err := envOf(call)
	if err != nil {
		return err
	}

	cfg, err := deps.Load(env.ConfigPath)
	if err != nil {
		return err
	}

	key := call.Args.String(0)
	value, found := cfg.Get(key)
	if !found {
		return errors.Errorf("unknown config key %q", key)
	}

	_, err = fmt.Fprintln(domain.Output(ctx), value)
	return err
}

func envOf(call descriptor.Call) (*actions.Env, error) {
	env, ok := call.Owner.(*actions.Env)
	if !ok || env == nil {
		return nil, errors.Errorf("config commands need an *actions.Env owner, got %T", call.Owner)
	}
	return env, nil
}
