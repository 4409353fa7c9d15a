package convert

import (
	"fmt"

	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/usage"
)

// Error describes a token that could not be converted.
type Error struct {
	Param string
	Token string
	Type  string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot convert %q to %s for parameter '%s': %v", e.Token, e.Type, e.Param, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func conversionError(param descriptor.ParameterSpec, token string, cause error) error {
	typ := param.Type.String()
	switch {
	case param.Type == descriptor.TypeEnum && param.Enum != nil:
		typ = param.Enum.Name
	case param.TypeName != "":
		typ = param.TypeName
	}

	ce := &Error{Param: param.Name, Token: token, Type: typ, Err: cause}
	return &usage.Error{
		Kind:    usage.ErrConversion,
		Message: "cobalt: " + ce.Error(),
		Err:     ce,
	}
}
