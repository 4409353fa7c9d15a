package usage

import "fmt"

// InsufficientArguments is returned when fewer tokens than required
// parameters were supplied.
func InsufficientArguments(command string, required, got int) *Error {
	return &Error{
		Kind:    ErrInsufficientArguments,
		Message: fmt.Sprintf("cobalt: '%s' requires %d argument(s), got %d", command, required, got),
	}
}
