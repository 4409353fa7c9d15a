package domain

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutput_DefaultsToStdout(t *testing.T) {
	require.Equal(t, os.Stdout, Output(context.Background()))
}

func TestOutput_WithOutput(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithOutput(context.Background(), &buf)
	require.Same(t, &buf, Output(ctx))

	require.Equal(t, os.Stdout, Output(WithOutput(context.Background(), nil)))
}

func TestConfigKeys_Lookup(t *testing.T) {
	key, ok := LookupConfigKey("history_size")
	require.True(t, ok)
	require.Equal(t, "Console", key.Section)
	require.Equal(t, "500", key.Default)

	require.True(t, IsValidConfigKey("log_level"))
	require.False(t, IsValidConfigKey("pager"))
	require.False(t, IsValidConfigKey(""))
}

func TestConfigKeys_SectionsAreContiguous(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for _, key := range ConfigKeys {
		if key.Section != prev {
			require.False(t, seen[key.Section], "section %s split", key.Section)
			seen[key.Section] = true
			prev = key.Section
		}
	}
	require.Len(t, seen, 3)
}
