package domain

// ConfigKey describes one config.toml key.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // heading under which `config` lists the key
	HideIfEmpty bool   // omitted from `config` while unset
}

// ConfigKeys lists every configuration key in display order.
var ConfigKeys = []ConfigKey{
	{Name: "prompt", Default: "cobalt> ", Section: "Console",
		Description: "Prompt shown before each input line"},
	{Name: "history_size", Default: "500", Section: "Console",
		Description: "Number of input lines kept in console history (0 disables history)"},

	{Name: "color", Default: "true", Section: "Display",
		Description: "Enable colored output (true/false)"},
	{Name: "theme", Default: "default", Section: "Display",
		Description: "Color theme: default, mono, ocean (optionally suffixed -dark or -light)"},

	{Name: "enable_log", Default: "false", Section: "Logging",
		Description: "Enable logging to file (true/false)"},
	{Name: "log_level", Default: "warn", Section: "Logging",
		Description: "Minimum log level: debug, info, warn, error"},
	// Empty means paths.LogFilePath().
	{Name: "log_path", Default: "", Section: "Logging", HideIfEmpty: true,
		Description: "Path to the log file"},
}

// LookupConfigKey returns the key named name.
func LookupConfigKey(name string) (ConfigKey, bool) {
	for _, key := range ConfigKeys {
		if key.Name == name {
			return key, true
		}
	}
	return ConfigKey{}, false
}

// IsValidConfigKey reports whether name is a known key.
func IsValidConfigKey(name string) bool {
	_, ok := LookupConfigKey(name)
	return ok
}
