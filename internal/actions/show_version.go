package actions

import (
	"context"
	"fmt"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

func ShowVersion(ctx context.Context, call descriptor.Call) error {
	return showVersion(ctx, call, defaultDeps())
}

func showVersion(ctx context.Context, _ descriptor.Call, deps actionDependencies) error {
	_, err := fmt.Fprintf(domain.Output(ctx), "cobalt version %v\n", deps.Version())
	return err
}
