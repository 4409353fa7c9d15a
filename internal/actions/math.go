package actions

import (
	"context"
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

// DefaultDivPrecision is the number of significant digits of math div when
// none is given.
const DefaultDivPrecision = 16

// MathAdd prints x + y. y is optional and defaults to zero.
func MathAdd(ctx context.Context, call descriptor.Call) error {
	x, _ := call.Args.Int(0)
	y, _ := call.Args.Int(1)
	_, err := fmt.Fprintln(domain.Output(ctx), x+y)
	return err
}

// MathDiv prints x / y computed in decimal arithmetic to the requested
// number of significant digits.
func MathDiv(ctx context.Context, call descriptor.Call) error {
	x, ok1 := call.Args.Get(0).(*apd.Decimal)
	y, ok2 := call.Args.Get(1).(*apd.Decimal)
	if !ok1 || !ok2 {
		return errors.Errorf("math div: expected decimals")
	}
	if y.IsZero() {
		return errors.Errorf("math div: division by zero")
	}

	precision, ok := call.Args.Int(2)
	if !ok || precision <= 0 {
		precision = DefaultDivPrecision
	}

	var z apd.Decimal
	dc := apd.BaseContext.WithPrecision(uint32(precision))
	if _, err := dc.Quo(&z, x, y); err != nil {
		return errors.Wrap(err, "math div")
	}

	var reduced apd.Decimal
	reduced.Reduce(&z)
	_, err := fmt.Fprintln(domain.Output(ctx), reduced.Text('f'))
	return err
}

// MathSqrt prints the square root of a double.
func MathSqrt(ctx context.Context, call descriptor.Call) error {
	x, _ := call.Args.Float(0)
	if x < 0 {
		return errors.Errorf("math sqrt: negative input %v", x)
	}
	_, err := fmt.Fprintln(domain.Output(ctx), math.Sqrt(x))
	return err
}
