package cli

import (
	"github.com/footprint-tools/cobalt/internal/config"
	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// ConfigKeys is the enum of settable config keys.
var ConfigKeys = &descriptor.EnumType{
	Name:    "ConfigKey",
	Members: config.Keys(),
}

var (
	ConfigKeyParam = []descriptor.ParameterSpec{
		descriptor.EnumParam("key", ConfigKeys, "Configuration key"),
	}

	ConfigKeyValueParams = []descriptor.ParameterSpec{
		descriptor.EnumParam("key", ConfigKeys, "Configuration key"),
		descriptor.Greedy("value", "Value to assign"),
	}

	ThemeNameParam = []descriptor.ParameterSpec{
		descriptor.Param("name", descriptor.TypeString, "Theme name (e.g., default, ocean-dark)"),
	}

	OptionalLimitParam = []descriptor.ParameterSpec{
		descriptor.Optional("limit", descriptor.TypeInt, "Number of lines to show (default 50)", nil),
	}
)
