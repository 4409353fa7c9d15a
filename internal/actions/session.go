package actions

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

// SessionNew prints a fresh random session id.
func SessionNew(ctx context.Context, call descriptor.Call) error {
	return sessionNew(ctx, call, defaultDeps())
}

func sessionNew(ctx context.Context, _ descriptor.Call, deps actionDependencies) error {
	_, err := fmt.Fprintln(domain.Output(ctx), deps.NewUUID().String())
	return err
}

// SessionInspect describes a session id parsed by the uuid converter.
func SessionInspect(ctx context.Context, call descriptor.Call) error {
	id, ok := call.Args.Get(0).(uuid.UUID)
	if !ok {
		return errors.Errorf("session inspect: expected a uuid, got %T", call.Args.Get(0))
	}

	_, err := fmt.Fprintf(domain.Output(ctx), "id:      %s\nversion: %d\nvariant: %s\n", id, id.Version(), id.Variant())
	return err
}
