package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/dispatchers"
	"github.com/footprint-tools/cobalt/internal/domain"
	"github.com/footprint-tools/cobalt/internal/paths"
	"github.com/footprint-tools/cobalt/internal/usage"
)

func newTestRegistry(t *testing.T) (*dispatchers.Registry, *actions.Env) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Setenv("NO_COLOR", "")
	t.Setenv("COBALT_NO_COLOR", "")
	t.Setenv("COBALT_LOG_LEVEL", "")

	env := &actions.Env{
		ConfigPath: filepath.Join(dir, "config.toml"),
		LogPath:    filepath.Join(dir, "cobalt.log"),
	}
	r := dispatchers.New()
	require.NoError(t, Register(r, env))
	return r, env
}

func run(t *testing.T, r *dispatchers.Registry, line string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := r.Execute(domain.WithOutput(context.Background(), &buf), line)
	return buf.String(), err
}

func TestRegister_Names(t *testing.T) {
	r, _ := newTestRegistry(t)

	names := r.Names()
	for _, want := range []string{
		"version", "echo", "paint", "sleep",
		"math add", "math div", "math sqrt",
		"session", "session inspect",
		"config", "config get", "config set", "config reset",
		"theme list", "theme set",
		"logs", "logs clear",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRegister_Twice(t *testing.T) {
	r, env := newTestRegistry(t)

	err := Register(r, env)
	require.Error(t, err)
	assert.True(t, usage.IsKind(err, usage.ErrConstruction))
}

func TestCommands(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantErr usage.ErrorKind
	}{
		{line: "version", want: "cobalt version "},
		{line: "echo a  b", want: "a  b\n"},
		{line: "ECHO upper", want: "upper\n"},
		{line: "paint Red hello world", want: "hello world"},
		{line: "paint Blue", want: "Blue"},
		{line: "paint red", wantErr: usage.ErrConversion},
		{line: "math add 2", want: "2\n"},
		{line: "math add 2 3", want: "5\n"},
		{line: "math add 2 x", wantErr: usage.ErrConversion},
		{line: "math add", wantErr: usage.ErrInsufficientArguments},
		{line: "math div 1 3", want: "0.3333333333333333\n"},
		{line: "math div 1 3 4", want: "0.3333\n"},
		{line: "math div 10 4", want: "2.5\n"},
		{line: "math div 1 3 300", wantErr: usage.ErrConversion},
		{line: "math sqrt 16", want: "4\n"},
		{line: "math mul 1 2", wantErr: usage.ErrNoMatch},
		{line: "sleep 1ms", want: "slept 1ms\n"},
		{line: "sleep soon", wantErr: usage.ErrConversion},
		{line: "session inspect 6ba7b810-9dad-11d1-80b4-00c04fd430c8", want: "version: 1"},
		{line: "session inspect nope", wantErr: usage.ErrConversion},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r, _ := newTestRegistry(t)

			out, err := run(t, r, tt.line)
			if tt.wantErr != usage.ErrUnknown {
				require.Error(t, err)
				assert.True(t, usage.IsKind(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCommands_HandlerErrors(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := run(t, r, "math div 1 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
	var ue *usage.Error
	assert.NotErrorAs(t, err, &ue)

	_, err = run(t, r, "math sqrt -4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative input")
}

func TestSession_New(t *testing.T) {
	r, _ := newTestRegistry(t)

	out, err := run(t, r, "session")
	require.NoError(t, err)

	id, err := uuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestConfigCommands(t *testing.T) {
	r, env := newTestRegistry(t)

	out, err := run(t, r, "config get prompt")
	require.NoError(t, err)
	assert.Equal(t, "cobalt> \n", out)

	out, err = run(t, r, "config set prompt my prompt>")
	require.NoError(t, err)
	assert.Equal(t, "updated prompt=my prompt>\n", out)

	content, err := os.ReadFile(env.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `prompt = "my prompt>"`)

	out, err = run(t, r, "config get prompt")
	require.NoError(t, err)
	assert.Equal(t, "my prompt>\n", out)

	out, err = run(t, r, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Console")
	assert.Contains(t, out, "  prompt=my prompt>")
	assert.Contains(t, out, "  log_level=warn")

	out, err = run(t, r, "config reset prompt")
	require.NoError(t, err)
	assert.Equal(t, "reset prompt=cobalt> \n", out)

	_, err = run(t, r, "config set history_size lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history_size")

	_, err = run(t, r, "config get pager")
	require.Error(t, err)
	assert.True(t, usage.IsKind(err, usage.ErrConversion))
}

func TestThemeCommands(t *testing.T) {
	r, env := newTestRegistry(t)

	out, err := run(t, r, "theme set ocean-dark")
	require.NoError(t, err)
	assert.Contains(t, out, "theme set to ocean-dark")

	content, err := os.ReadFile(env.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `theme = "ocean-dark"`)

	out, err = run(t, r, "theme list")
	require.NoError(t, err)
	assert.Contains(t, out, "* ocean-dark")
	assert.Contains(t, out, "mono-light")

	_, err = run(t, r, "theme set neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme: neon")
}

func TestLogsCommands(t *testing.T) {
	r, env := newTestRegistry(t)

	out, err := run(t, r, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "No log file found")

	lines := "[2026-01-01 10:00:00] INFO: one\n[2026-01-01 10:00:01] WARN: two\n[2026-01-01 10:00:02] ERROR: three\n"
	require.NoError(t, os.WriteFile(env.LogPath, []byte(lines), 0600))

	out, err = run(t, r, "logs 2")
	require.NoError(t, err)
	assert.NotContains(t, out, "one")
	assert.Contains(t, out, "WARN: two")
	assert.Contains(t, out, "ERROR: three")

	out, err = run(t, r, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "INFO: one")

	out, err = run(t, r, "logs clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Log file cleared")

	out, err = run(t, r, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "Log file is empty")
}

func TestHelp_CoversTree(t *testing.T) {
	r, _ := newTestRegistry(t)

	text, err := r.Help("")
	require.NoError(t, err)
	for _, want := range []string{"echo <text...>", "paint <color> <text...?>", "math div <x> <y> <precision?>", "sleep <duration>"} {
		assert.Contains(t, text, want)
	}

	text, err = r.Help("config")
	require.NoError(t, err)
	assert.Contains(t, text, "config set <key> <value...>")
	assert.Contains(t, text, "key - Configuration key")
}
