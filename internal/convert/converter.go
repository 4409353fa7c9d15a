package convert

import "github.com/footprint-tools/cobalt/internal/descriptor"

// Converter is a pluggable strategy for parameters not covered by
// enumeration or builtin parsing.
type Converter interface {
	// ShouldHandle reports whether this converter claims the parameter.
	ShouldHandle(param descriptor.ParameterSpec) bool

	// Convert parses token into the parameter's value.
	Convert(token string, param descriptor.ParameterSpec) (any, error)
}

// Registry is an ordered converter list. Registration order is priority
// order. A Registry must not be mutated while conversions run against it.
type Registry struct {
	converters []Converter
}

// NewRegistry creates a registry holding converters in the given order.
func NewRegistry(converters ...Converter) *Registry {
	return &Registry{converters: append([]Converter(nil), converters...)}
}

// Add appends c at the lowest priority.
func (r *Registry) Add(c Converter) {
	r.converters = append(r.converters, c)
}

// Len returns the number of registered converters.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.converters)
}

// Find returns the first converter claiming param, or nil.
func (r *Registry) Find(param descriptor.ParameterSpec) Converter {
	if r == nil {
		return nil
	}
	for _, c := range r.converters {
		if c.ShouldHandle(param) {
			return c
		}
	}
	return nil
}
