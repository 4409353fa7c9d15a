package theme

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/config"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

func testDeps(stored *config.Config) (Deps, *[]string) {
	var applied []string
	return Deps{
		Load: func(string) (*config.Config, error) { return stored, nil },
		Update: func(_ string, fn func(*config.Config) error) (*config.Config, error) {
			return stored, fn(stored)
		},
		Apply:      func(_ bool, theme string) { applied = append(applied, theme) },
		Enabled:    func() bool { return true },
		BaseNames:  []string{"default"},
		Themes:     map[string]style.ColorConfig{"default-dark": {Success: "10"}, "default-light": {Success: "28"}},
		ResolveFor: func(name string) string { return name + "-dark" },
	}, &applied
}

func themeCall(args ...any) descriptor.Call {
	return descriptor.Call{Owner: &actions.Env{ConfigPath: "unused"}, Args: args}
}

func TestList_MarksCurrent(t *testing.T) {
	var buf bytes.Buffer
	deps, _ := testDeps(&config.Config{Theme: "default"})

	err := list(domain.WithOutput(context.Background(), &buf), themeCall(), deps)

	require.NoError(t, err)
	require.Contains(t, buf.String(), "* default-dark")
	require.Contains(t, buf.String(), "  default-light")
}

func TestSet_KnownVariant(t *testing.T) {
	var buf bytes.Buffer
	stored := config.Default()
	deps, applied := testDeps(stored)

	err := setTheme(domain.WithOutput(context.Background(), &buf), themeCall("default-light"), deps)

	require.NoError(t, err)
	require.Equal(t, "default-light", stored.Theme)
	require.Equal(t, []string{"default-light"}, *applied)
	require.Contains(t, buf.String(), "theme set to default-light")
}

func TestSet_BaseName(t *testing.T) {
	stored := config.Default()
	deps, _ := testDeps(stored)
	deps.Enabled = func() bool { return false }

	err := setTheme(context.Background(), themeCall("default"), deps)

	require.NoError(t, err)
	require.Equal(t, "default", stored.Theme)
}

func TestSet_UnknownTheme(t *testing.T) {
	stored := config.Default()
	deps, applied := testDeps(stored)

	err := setTheme(context.Background(), themeCall("neon"), deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown theme: neon")
	require.Equal(t, "default", stored.Theme)
	require.Empty(t, *applied)
}

func TestSet_WrongOwner(t *testing.T) {
	deps, _ := testDeps(config.Default())
	err := setTheme(context.Background(), descriptor.Call{Args: descriptor.Args{"default"}}, deps)
	require.Error(t, err)
}
