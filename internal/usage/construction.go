package usage

import "fmt"

// Construction is returned at registration time for command declarations
// that cannot form a valid tree.
func Construction(format string, args ...any) *Error {
	return &Error{
		Kind:    ErrConstruction,
		Message: "cobalt: " + fmt.Sprintf(format, args...),
	}
}

// DuplicateCommand is returned when two siblings share a name under case folding.
func DuplicateCommand(path, name string) *Error {
	if path == "" {
		return Construction("duplicate command '%s'", name)
	}
	return Construction("duplicate command '%s' under '%s'", name, path)
}
