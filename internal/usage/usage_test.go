package usage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"no match", NoMatch("foo"), 1},
		{"insufficient", InsufficientArguments("add", 2, 1), 2},
		{"invalid flag", InvalidFlag("--nope"), 2},
		{"construction", DuplicateCommand("", "foo"), 1},
		{"explicit override", &Error{Kind: ErrNoMatch, ExitCode: 7}, 7},
		{"unknown kind", &Error{Kind: ErrorKind(99)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.GetExitCode())
		})
	}
}

func TestNoMatch_Suggestions(t *testing.T) {
	err := NoMatch("stauts", "status", "start")
	require.Equal(t, []string{"status", "start"}, err.Suggestions)
	require.Contains(t, err.Error(), "'stauts' is not a command")
	require.Contains(t, err.Error(), "\tstatus\n\tstart")

	plain := NoMatch("zzz")
	require.NotContains(t, plain.Error(), "most similar")
}

func TestDuplicateCommand_Message(t *testing.T) {
	require.Equal(t, "cobalt: duplicate command 'get' under 'config'", DuplicateCommand("config", "get").Error())
	require.Equal(t, "cobalt: duplicate command 'get'", DuplicateCommand("", "get").Error())
}

func TestIsKind(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", Construction("bad"))
	require.True(t, IsKind(wrapped, ErrConstruction))
	require.False(t, IsKind(wrapped, ErrNoMatch))
	require.False(t, IsKind(fmt.Errorf("plain"), ErrConstruction))
}
