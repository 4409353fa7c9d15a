package actions

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

// Echo prints its greedy text argument as typed, inner spacing included.
func Echo(ctx context.Context, call descriptor.Call) error {
	_, err := fmt.Fprintln(domain.Output(ctx), call.Args.String(0))
	return err
}

// Paint prints text in the named color. The color is an enum member; the
// text is optional.
func Paint(ctx context.Context, call descriptor.Call) error {
	color, ok := call.Args.Enum(0)
	if !ok {
		return errors.Errorf("paint: missing color")
	}

	text := color.Name
	if call.Args.Has(1) {
		text = call.Args.String(1)
	}

	_, err := fmt.Fprintln(domain.Output(ctx), paintStyles[color.Ordinal].Render(text))
	return err
}
