package convert

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// Arity returns the number of tokens params require: the count of
// non-optional parameters.
func Arity(params []descriptor.ParameterSpec) int {
	n := 0
	for _, p := range params {
		if !p.Optional {
			n++
		}
	}
	return n
}

// Pipeline converts tokens against a fixed converter registry.
type Pipeline struct {
	converters *Registry
}

// NewPipeline creates a pipeline consulting converters. A nil registry
// means builtin parsing only.
func NewPipeline(converters *Registry) *Pipeline {
	return &Pipeline{converters: converters}
}

// Convert binds tokens to params. Callers check Arity first; a parameter
// whose token is absent and which is not optional is reported as a
// conversion error. Tokens beyond the last parameter are ignored.
func (p *Pipeline) Convert(params []descriptor.ParameterSpec, tokens []string) (descriptor.Args, error) {
	args := make(descriptor.Args, len(params))

	for i, param := range params {
		if i >= len(tokens) {
			if param.Optional {
				args[i] = defaultFor(param)
				continue
			}
			return nil, conversionError(param, "", errors.New("missing token"))
		}

		if param.Greedy {
			args[i] = strings.Join(tokens[i:], " ")
			break
		}

		v, err := p.convertOne(tokens[i], param)
		if err != nil {
			return nil, conversionError(param, tokens[i], err)
		}
		args[i] = v
	}

	return args, nil
}

func (p *Pipeline) convertOne(token string, param descriptor.ParameterSpec) (any, error) {
	if param.Type == descriptor.TypeEnum {
		return parseEnum(token, param.Enum)
	}

	if c := p.converters.Find(param); c != nil {
		return c.Convert(token, param)
	}

	return Builtin(token, param.Type)
}

func parseEnum(token string, enum *descriptor.EnumType) (any, error) {
	if enum == nil {
		return nil, errors.New("enumeration parameter declares no members")
	}
	v, ok := enum.Lookup(token)
	if !ok {
		return nil, errors.Errorf("%q is not a member of %s (%s)", token, enum.Name, strings.Join(enum.Members, ", "))
	}
	return v, nil
}

func defaultFor(param descriptor.ParameterSpec) any {
	if param.Default != nil {
		return param.Default
	}
	return descriptor.Missing
}
