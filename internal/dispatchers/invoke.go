package dispatchers

import (
	"context"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// Invoke calls the bound handler. An async handler is awaited until its
// pending computation yields; a closed channel means success. Handler
// errors are returned unmodified.
func Invoke(ctx context.Context, b *Binding, args descriptor.Args) error {
	call := descriptor.Call{Owner: b.Owner, Args: args}

	if b.Handler.IsAsync() {
		pending := b.Handler.Async(ctx, call)
		if pending == nil {
			return nil
		}
		return <-pending
	}

	return b.Handler.Sync(ctx, call)
}
