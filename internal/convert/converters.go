package convert

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// TypeNameConverter claims TypeOther parameters whose TypeName matches.
type TypeNameConverter struct {
	TypeName string
	Parse    func(token string) (any, error)
}

func (c TypeNameConverter) ShouldHandle(param descriptor.ParameterSpec) bool {
	return param.Type == descriptor.TypeOther && param.TypeName == c.TypeName
}

func (c TypeNameConverter) Convert(token string, _ descriptor.ParameterSpec) (any, error) {
	return c.Parse(token)
}

// DurationConverter parses "duration" parameters with time.ParseDuration.
var DurationConverter Converter = TypeNameConverter{
	TypeName: "duration",
	Parse: func(token string) (any, error) {
		d, err := time.ParseDuration(token)
		return d, errors.Wrap(err, "parse duration")
	},
}

// UUIDConverter parses "uuid" parameters.
var UUIDConverter Converter = TypeNameConverter{
	TypeName: "uuid",
	Parse: func(token string) (any, error) {
		id, err := uuid.Parse(token)
		return id, errors.Wrap(err, "parse uuid")
	},
}

// Verify TypeNameConverter implements Converter
var _ Converter = TypeNameConverter{}
