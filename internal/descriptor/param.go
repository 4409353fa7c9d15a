package descriptor

import "fmt"

// TypeTag is the declared target type of a parameter.
type TypeTag int

const (
	TypeString TypeTag = iota
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeDecimal
	TypeBool
	TypeChar
	TypeEnum
	TypeOther
)

var typeNames = map[TypeTag]string{
	TypeString:  "string",
	TypeInt:     "int",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint:    "uint",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float",
	TypeFloat64: "double",
	TypeDecimal: "decimal",
	TypeBool:    "bool",
	TypeChar:    "char",
	TypeEnum:    "enum",
	TypeOther:   "other",
}

func (t TypeTag) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TypeTag(%d)", int(t))
}

// EnumType is a closed set of member names. Member lookup is case-sensitive.
type EnumType struct {
	Name    string
	Members []string
}

// Lookup returns the member named exactly name.
func (e *EnumType) Lookup(name string) (EnumValue, bool) {
	for i, m := range e.Members {
		if m == name {
			return EnumValue{Type: e.Name, Name: m, Ordinal: i}, true
		}
	}
	return EnumValue{}, false
}

// EnumValue is a parsed enumeration member.
type EnumValue struct {
	Type    string
	Name    string
	Ordinal int
}

func (v EnumValue) String() string {
	return v.Name
}

// ParameterSpec describes one handler parameter.
type ParameterSpec struct {
	Name        string
	Description string
	Type        TypeTag

	// TypeName identifies host-defined types for TypeOther parameters so
	// custom converters can claim them.
	TypeName string

	// Enum is required when Type is TypeEnum.
	Enum *EnumType

	Optional bool
	Greedy   bool

	// Default is bound when an optional parameter has no token. A nil
	// Default binds Missing.
	Default any
}

// Describe returns the declared description, or DefaultDescription.
func (p ParameterSpec) Describe() string {
	if p.Description == "" {
		return DefaultDescription
	}
	return p.Description
}

// Placeholder renders the parameter for usage lines, e.g. <count?>.
func (p ParameterSpec) Placeholder() string {
	name := p.Name
	if p.Greedy {
		name += "..."
	}
	if p.Optional {
		name += "?"
	}
	return "<" + name + ">"
}

type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing is bound to an omitted optional parameter that declares no default.
var Missing any = missing{}

// IsMissing reports whether v is the Missing marker.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}
