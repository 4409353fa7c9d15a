package config

import (
	"context"
	"fmt"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

func List(ctx context.Context, call descriptor.Call) error {
	return list(ctx, call, DefaultDeps())
}

func list(ctx context.Context, call descriptor.Call, deps Deps) error {
	env, err := envOf(call)
	if err != nil {
		return err
	}

	cfg, err := deps.Load(env.ConfigPath)
	if err != nil {
		return err
	}

	out := domain.Output(ctx)
	section := ""
	for _, kv := range cfg.Values() {
		if kv.Key.Section != section {
			if section != "" {
				fmt.Fprintln(out)
			}
			section = kv.Key.Section
			fmt.Fprintln(out, style.Header(section))
		}
		fmt.Fprintf(out, "  %s=%s\n", kv.Key.Name, kv.Value)
	}
	return nil
}
