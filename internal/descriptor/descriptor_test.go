package descriptor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		spec ParameterSpec
		want string
	}{
		{"required", Param("x", TypeInt, ""), "<x>"},
		{"optional", Optional("n", TypeInt, "", 1), "<n?>"},
		{"greedy", Greedy("text", ""), "<text...>"},
		{"greedy optional", ParameterSpec{Name: "rest", Greedy: true, Optional: true}, "<rest...?>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.spec.Placeholder())
		})
	}
}

func TestDescribe_FallsBack(t *testing.T) {
	require.Equal(t, DefaultDescription, Param("x", TypeInt, "").Describe())
	require.Equal(t, "count", Param("x", TypeInt, "count").Describe())

	cmd := Command(CommandSpec{Name: "ls"})
	require.Equal(t, DefaultDescription, cmd.Describe())
}

func TestBuilders(t *testing.T) {
	index := Index(IndexSpec{Handler: Sync(nil)})
	group := Group(GroupSpec{Name: "user", Children: []*Descriptor{index}})

	require.True(t, index.IsIndex())
	require.False(t, index.IsGroup())
	require.True(t, group.IsGroup())
	require.False(t, group.IsIndex())
	require.Nil(t, group.Handler)
}

func TestHandler_IsAsync(t *testing.T) {
	var nilHandler *Handler
	require.False(t, nilHandler.IsAsync())
	require.False(t, Sync(nil).IsAsync())
	require.True(t, Async(func(_ context.Context, _ Call) <-chan error { return nil }).IsAsync())
}

func TestEnumLookup_CaseSensitive(t *testing.T) {
	e := &EnumType{Name: "Color", Members: []string{"Red", "Green"}}

	v, ok := e.Lookup("Green")
	require.True(t, ok)
	require.Equal(t, EnumValue{Type: "Color", Name: "Green", Ordinal: 1}, v)
	require.Equal(t, "Green", v.String())

	_, ok = e.Lookup("green")
	require.False(t, ok)
}

func TestArgs_Accessors(t *testing.T) {
	args := Args{"s", int16(7), uint8(3), float32(1.5), true, Missing}

	require.Equal(t, 6, args.Len())
	require.Equal(t, "s", args.String(0))
	require.Equal(t, "7", args.String(1))

	n, ok := args.Int(1)
	require.True(t, ok)
	require.Equal(t, 7, n)
	n, ok = args.Int(2)
	require.True(t, ok)
	require.Equal(t, 3, n)
	_, ok = args.Int(0)
	require.False(t, ok)

	f, ok := args.Float(3)
	require.True(t, ok)
	require.InDelta(t, 1.5, f, 1e-9)

	b, ok := args.Bool(4)
	require.True(t, ok)
	require.True(t, b)

	require.False(t, args.Has(5))
	require.Nil(t, args.Get(5))
	require.Equal(t, "", args.String(5))
	require.False(t, args.Has(-1))
	require.False(t, args.Has(9))
}
