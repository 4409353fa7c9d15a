package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

// Sleep waits for its duration argument without blocking the caller and
// reports completion. It stops early when ctx is done.
func Sleep(ctx context.Context, call descriptor.Call) <-chan error {
	return sleep(ctx, call, defaultDeps())
}

func sleep(ctx context.Context, call descriptor.Call, deps actionDependencies) <-chan error {
	done := make(chan error, 1)

	d, ok := call.Args.Get(0).(time.Duration)
	if !ok {
		done <- errors.Errorf("sleep: expected a duration, got %T", call.Args.Get(0))
		close(done)
		return done
	}

	go func() {
		defer close(done)
		select {
		case <-ctx.Done():
			done <- ctx.Err()
		case <-deps.After(d):
			_, err := fmt.Fprintf(domain.Output(ctx), "slept %s\n", d)
			if err != nil {
				done <- err
			}
		}
	}()
	return done
}
