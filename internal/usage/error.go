package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrNoMatch
	ErrInsufficientArguments
	ErrConversion
	ErrConstruction
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidFlag:
		return "invalid flag"
	case ErrNoMatch:
		return "no match"
	case ErrInsufficientArguments:
		return "insufficient arguments"
	case ErrConversion:
		return "conversion"
	case ErrConstruction:
		return "construction"
	default:
		return "unknown"
	}
}

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command (no match)
//	  - Invalid command declarations
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Insufficient arguments
//	  - Unconvertible argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:               1,
	ErrInvalidFlag:           2,
	ErrNoMatch:               1,
	ErrInsufficientArguments: 2,
	ErrConversion:            2,
	ErrConstruction:          1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero

	// Suggestions holds similarly named commands for ErrNoMatch.
	Suggestions []string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// IsKind reports whether err is, or wraps, a usage error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind == kind
	}
	return false
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
