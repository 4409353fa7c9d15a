package dispatchers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// recorder collects handler invocations by command label.
type recorder struct {
	mu    sync.Mutex
	calls map[string][]descriptor.Call
}

func newRecorder() *recorder {
	return &recorder{calls: make(map[string][]descriptor.Call)}
}

func (r *recorder) handler(label string) *descriptor.Handler {
	return descriptor.Sync(func(_ context.Context, call descriptor.Call) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.calls[label] = append(r.calls[label], call)
		return nil
	})
}

func (r *recorder) count(label string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls[label])
}

func (r *recorder) last(label string) descriptor.Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := r.calls[label]
	if len(calls) == 0 {
		return descriptor.Call{}
	}
	return calls[len(calls)-1]
}

var testColors = &descriptor.EnumType{Name: "Color", Members: []string{"Red", "Green", "Blue"}}

// createTestForest declares:
//
//	a            (index H1)
//	a b          (H2)
//	a c          (no handler)
//	a c d        (H3)
//	echo <text...>
//	math add <x> <y?>
//	math pair <x> <y>
//	paint <color>
func createTestForest(rec *recorder) []*descriptor.Descriptor {
	return []*descriptor.Descriptor{
		descriptor.Group(descriptor.GroupSpec{
			Name:        "a",
			Description: "Group a",
			Children: []*descriptor.Descriptor{
				descriptor.Index(descriptor.IndexSpec{Description: "Run a", Handler: rec.handler("H1")}),
				descriptor.Command(descriptor.CommandSpec{Name: "b", Description: "Run b", Handler: rec.handler("H2")}),
				descriptor.Group(descriptor.GroupSpec{
					Name: "c",
					Children: []*descriptor.Descriptor{
						descriptor.Command(descriptor.CommandSpec{Name: "d", Handler: rec.handler("H3")}),
					},
				}),
			},
		}),
		descriptor.Command(descriptor.CommandSpec{
			Name:        "echo",
			Description: "Print text",
			Params:      []descriptor.ParameterSpec{descriptor.Greedy("text", "Text to print")},
			Handler:     rec.handler("echo"),
		}),
		descriptor.Group(descriptor.GroupSpec{
			Name: "math",
			Children: []*descriptor.Descriptor{
				descriptor.Command(descriptor.CommandSpec{
					Name:        "add",
					Description: "Add numbers",
					Params: []descriptor.ParameterSpec{
						descriptor.Param("x", descriptor.TypeInt, "First"),
						descriptor.Optional("y", descriptor.TypeInt, "Second", 10),
					},
					Handler: rec.handler("add"),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name: "pair",
					Params: []descriptor.ParameterSpec{
						descriptor.Param("x", descriptor.TypeInt, ""),
						descriptor.Param("y", descriptor.TypeInt, ""),
					},
					Handler: rec.handler("pair"),
				}),
			},
		}),
		descriptor.Command(descriptor.CommandSpec{
			Name:    "paint",
			Params:  []descriptor.ParameterSpec{descriptor.EnumParam("color", testColors, "Color to use")},
			Handler: rec.handler("paint"),
		}),
	}
}

func newTestRegistry(t *testing.T, rec *recorder, opts ...Option) *Registry {
	t.Helper()

	r := New(opts...)
	require.NoError(t, r.Register(nil, createTestForest(rec)...))
	return r
}
