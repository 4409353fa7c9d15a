package actions

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
)

func TestShowVersion_PrintsVersion(t *testing.T) {
	var buf bytes.Buffer
	deps := actionDependencies{
		Version: func() string { return "1.2.3" },
	}

	err := showVersion(domain.WithOutput(context.Background(), &buf), descriptor.Call{}, deps)

	require.NoError(t, err)
	require.Equal(t, "cobalt version 1.2.3\n", buf.String())
}

func TestSessionNew_UsesGenerator(t *testing.T) {
	var buf bytes.Buffer
	fixed := uuid.MustParse("00000000-0000-4000-8000-000000000001")
	deps := actionDependencies{NewUUID: func() uuid.UUID { return fixed }}

	err := sessionNew(domain.WithOutput(context.Background(), &buf), descriptor.Call{}, deps)

	require.NoError(t, err)
	require.Equal(t, fixed.String()+"\n", buf.String())
}

func TestSleep_Completes(t *testing.T) {
	var buf bytes.Buffer
	fire := make(chan time.Time, 1)
	fire <- time.Now()
	deps := actionDependencies{After: func(time.Duration) <-chan time.Time { return fire }}

	call := descriptor.Call{Args: descriptor.Args{2 * time.Second}}
	done := sleep(domain.WithOutput(context.Background(), &buf), call, deps)

	require.NoError(t, <-done)
	require.Equal(t, "slept 2s\n", buf.String())
}

func TestSleep_Cancelled(t *testing.T) {
	deps := actionDependencies{After: func(time.Duration) <-chan time.Time { return nil }}
	ctx, cancel := context.WithCancel(context.Background())

	done := sleep(ctx, descriptor.Call{Args: descriptor.Args{time.Hour}}, deps)
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
	_, open := <-done
	require.False(t, open)
}

func TestSleep_WrongArgument(t *testing.T) {
	done := sleep(context.Background(), descriptor.Call{Args: descriptor.Args{"1s"}}, defaultDeps())
	err := <-done
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a duration")
}

func TestPaint_DefaultsToColorName(t *testing.T) {
	var buf bytes.Buffer
	green, ok := Colors.Lookup("Green")
	require.True(t, ok)

	call := descriptor.Call{Args: descriptor.Args{green, descriptor.Missing}}
	require.NoError(t, Paint(domain.WithOutput(context.Background(), &buf), call))
	require.Contains(t, buf.String(), "Green")
}

func TestPaint_StylesCoverEveryColor(t *testing.T) {
	require.Len(t, paintStyles, len(Colors.Members))
}

func TestMath_HandlerErrors(t *testing.T) {
	zero := apd.New(0, 0)
	one := apd.New(1, 0)

	tests := []struct {
		name string
		fn   func(context.Context, descriptor.Call) error
		args descriptor.Args
		want string
	}{
		{"div by zero", MathDiv, descriptor.Args{one, zero, descriptor.Missing}, "math div: division by zero"},
		{"div wrong types", MathDiv, descriptor.Args{"1", "2"}, "math div: expected decimals"},
		{"sqrt negative", MathSqrt, descriptor.Args{-4.0}, "math sqrt: negative input -4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn(context.Background(), descriptor.Call{Args: tt.args})
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestMathDiv_Precision(t *testing.T) {
	var buf bytes.Buffer
	call := descriptor.Call{Args: descriptor.Args{apd.New(1, 0), apd.New(3, 0), uint8(4)}}

	require.NoError(t, MathDiv(domain.WithOutput(context.Background(), &buf), call))
	require.Equal(t, "0.3333\n", buf.String())
}
