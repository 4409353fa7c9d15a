package cli

import (
	"github.com/footprint-tools/cobalt/internal/actions"
	configactions "github.com/footprint-tools/cobalt/internal/actions/config"
	"github.com/footprint-tools/cobalt/internal/actions/logs"
	"github.com/footprint-tools/cobalt/internal/actions/theme"
	"github.com/footprint-tools/cobalt/internal/convert"
	"github.com/footprint-tools/cobalt/internal/descriptor"
	"github.com/footprint-tools/cobalt/internal/dispatchers"
)

// BuildTree declares the commands that need no owner.
func BuildTree() []*descriptor.Descriptor {
	return []*descriptor.Descriptor{
		descriptor.Command(descriptor.CommandSpec{
			Name:        "version",
			Description: "Show cobalt version",
			Handler:     descriptor.Sync(actions.ShowVersion),
		}),
		descriptor.Command(descriptor.CommandSpec{
			Name:        "echo",
			Description: "Print the rest of the line",
			Params:      []descriptor.ParameterSpec{descriptor.Greedy("text", "Text to print")},
			Handler:     descriptor.Sync(actions.Echo),
		}),
		descriptor.Command(descriptor.CommandSpec{
			Name:        "paint",
			Description: "Print text in a color",
			Params: []descriptor.ParameterSpec{
				descriptor.EnumParam("color", actions.Colors, "Red, Green, Blue or Plain"),
				{Name: "text", Description: "Text to paint (defaults to the color name)", Type: descriptor.TypeString, Optional: true, Greedy: true},
			},
			Handler: descriptor.Sync(actions.Paint),
		}),
		descriptor.Command(descriptor.CommandSpec{
			Name:        "sleep",
			Description: "Wait for a duration such as 1.5s",
			Params:      []descriptor.ParameterSpec{descriptor.Custom("duration", "duration", "How long to wait")},
			Handler:     descriptor.Async(actions.Sleep),
		}),
		descriptor.Group(descriptor.GroupSpec{
			Name:        "math",
			Description: "Arithmetic",
			Children: []*descriptor.Descriptor{
				descriptor.Command(descriptor.CommandSpec{
					Name:        "add",
					Description: "Add two integers",
					Params: []descriptor.ParameterSpec{
						descriptor.Param("x", descriptor.TypeInt64, "First addend"),
						descriptor.Optional("y", descriptor.TypeInt64, "Second addend", int64(0)),
					},
					Handler: descriptor.Sync(actions.MathAdd),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "div",
					Description: "Divide two decimals",
					Params: []descriptor.ParameterSpec{
						descriptor.Param("x", descriptor.TypeDecimal, "Dividend"),
						descriptor.Param("y", descriptor.TypeDecimal, "Divisor"),
						descriptor.Optional("precision", descriptor.TypeUint8, "Significant digits", nil),
					},
					Handler: descriptor.Sync(actions.MathDiv),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "sqrt",
					Description: "Square root",
					Params:      []descriptor.ParameterSpec{descriptor.Param("x", descriptor.TypeFloat64, "Radicand")},
					Handler:     descriptor.Sync(actions.MathSqrt),
				}),
			},
		}),
		descriptor.Group(descriptor.GroupSpec{
			Name:        "session",
			Description: "Session identifiers",
			Children: []*descriptor.Descriptor{
				descriptor.Index(descriptor.IndexSpec{
					Description: "Print a new session id",
					Handler:     descriptor.Sync(actions.SessionNew),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "inspect",
					Description: "Describe a session id",
					Params:      []descriptor.ParameterSpec{descriptor.Custom("id", "uuid", "Session id")},
					Handler:     descriptor.Sync(actions.SessionInspect),
				}),
			},
		}),
	}
}

// BuildStateTree declares the commands that read or write the config and
// log files. They are registered with an *actions.Env owner.
func BuildStateTree() []*descriptor.Descriptor {
	return []*descriptor.Descriptor{
		descriptor.Group(descriptor.GroupSpec{
			Name:        "config",
			Description: "Manage configuration",
			Children: []*descriptor.Descriptor{
				descriptor.Index(descriptor.IndexSpec{
					Description: "List configuration values",
					Handler:     descriptor.Sync(configactions.List),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "get",
					Description: "Get a config value",
					Params:      ConfigKeyParam,
					Handler:     descriptor.Sync(configactions.Get),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "set",
					Description: "Set a config value",
					Params:      ConfigKeyValueParams,
					Handler:     descriptor.Sync(configactions.Set),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "reset",
					Description: "Restore a config value to its default",
					Params:      ConfigKeyParam,
					Handler:     descriptor.Sync(configactions.Reset),
				}),
			},
		}),
		descriptor.Group(descriptor.GroupSpec{
			Name:        "theme",
			Description: "Color themes",
			Children: []*descriptor.Descriptor{
				descriptor.Command(descriptor.CommandSpec{
					Name:        "list",
					Description: "List available themes",
					Handler:     descriptor.Sync(theme.List),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "set",
					Description: "Set the color theme",
					Params:      ThemeNameParam,
					Handler:     descriptor.Sync(theme.Set),
				}),
			},
		}),
		descriptor.Group(descriptor.GroupSpec{
			Name:        "logs",
			Description: "Inspect the log file",
			Children: []*descriptor.Descriptor{
				descriptor.Index(descriptor.IndexSpec{
					Description: "Show the last lines of the log file",
					Params:      OptionalLimitParam,
					Handler:     descriptor.Sync(logs.View),
				}),
				descriptor.Command(descriptor.CommandSpec{
					Name:        "clear",
					Description: "Empty the log file",
					Handler:     descriptor.Sync(logs.Clear),
				}),
			},
		}),
	}
}

// Register adds the bundled converters and every built-in command to r.
func Register(r *dispatchers.Registry, env *actions.Env) error {
	r.AddConverter(convert.DurationConverter)
	r.AddConverter(convert.UUIDConverter)

	if err := r.Register(nil, BuildTree()...); err != nil {
		return err
	}
	return r.Register(env, BuildStateTree()...)
}
