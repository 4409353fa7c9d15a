package usage

import (
	"fmt"
	"strings"
)

// NoMatch is returned when a line does not resolve to a command with a handler.
func NoMatch(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("cobalt: '%s' is not a command. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:        ErrNoMatch,
		Message:     msg,
		Suggestions: suggestions,
	}
}
