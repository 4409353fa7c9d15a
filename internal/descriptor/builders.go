package descriptor

// GroupSpec declares a container of subcommands.
type GroupSpec struct {
	Name        string
	Description string
	Children    []*Descriptor
}

// CommandSpec declares a command with a handler.
type CommandSpec struct {
	Name        string
	Description string
	Params      []ParameterSpec
	Handler     *Handler
}

// IndexSpec declares the default handler of the enclosing group.
type IndexSpec struct {
	Description string
	Params      []ParameterSpec
	Handler     *Handler
}

func Group(spec GroupSpec) *Descriptor {
	return &Descriptor{
		Name:        spec.Name,
		Description: spec.Description,
		Children:    spec.Children,
	}
}

func Command(spec CommandSpec) *Descriptor {
	return &Descriptor{
		Name:        spec.Name,
		Description: spec.Description,
		Parameters:  spec.Params,
		Handler:     spec.Handler,
	}
}

func Index(spec IndexSpec) *Descriptor {
	return &Descriptor{
		Name:        IndexName,
		Description: spec.Description,
		Parameters:  spec.Params,
		Handler:     spec.Handler,
	}
}

// Param declares a required parameter of the given type.
func Param(name string, typ TypeTag, description string) ParameterSpec {
	return ParameterSpec{Name: name, Type: typ, Description: description}
}

// Optional declares an optional parameter bound to def when omitted.
func Optional(name string, typ TypeTag, description string, def any) ParameterSpec {
	return ParameterSpec{Name: name, Type: typ, Description: description, Optional: true, Default: def}
}

// Greedy declares a string parameter that swallows the rest of the line.
func Greedy(name, description string) ParameterSpec {
	return ParameterSpec{Name: name, Type: TypeString, Description: description, Greedy: true}
}

// EnumParam declares a required enumeration parameter.
func EnumParam(name string, enum *EnumType, description string) ParameterSpec {
	return ParameterSpec{Name: name, Type: TypeEnum, Enum: enum, Description: description}
}

// Custom declares a required TypeOther parameter named typeName, to be
// claimed by a registered converter.
func Custom(name, typeName, description string) ParameterSpec {
	return ParameterSpec{Name: name, Type: TypeOther, TypeName: typeName, Description: description}
}
