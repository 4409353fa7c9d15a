package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Environment variables consulted by LoadColorConfig.
const (
	EnvColorTheme  = "COBALT_COLOR_THEME"
	envColorPrefix = "COBALT_COLOR_"
)

// ColorConfig is a theme. Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
}

// fields pairs each color with the env suffix that overrides it.
func (c *ColorConfig) fields() map[string]*string {
	return map[string]*string{
		"SUCCESS": &c.Success,
		"WARNING": &c.Warning,
		"ERROR":   &c.Error,
		"INFO":    &c.Info,
		"MUTED":   &c.Muted,
		"HEADER":  &c.Header,
		"PROMPT":  &c.Prompt,
	}
}

// BaseThemeNames are the names accepted without a -dark/-light suffix.
var BaseThemeNames = []string{"default", "mono", "ocean"}

func palette(success, warning, errorColor, info, muted, prompt string) ColorConfig {
	return ColorConfig{
		Success: success,
		Warning: warning,
		Error:   errorColor,
		Info:    info,
		Muted:   muted,
		Header:  "bold",
		Prompt:  prompt,
	}
}

// Themes holds the built-in palettes. Dark variants use bright colors and
// light variants dark ones.
var Themes = map[string]ColorConfig{
	"default-dark":  palette("10", "11", "9", "14", "245", "13"),
	"default-light": palette("28", "130", "124", "27", "242", "90"),
	"mono-dark":     palette("15", "250", "15", "252", "242", "15"),
	"mono-light":    palette("232", "238", "232", "235", "245", "232"),
	"ocean-dark":    palette("49", "229", "210", "45", "67", "39"),
	"ocean-light":   palette("29", "136", "160", "25", "66", "24"),
}

// IsDarkBackground asks the terminal for its background. It reports true
// when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName adds a -dark or -light suffix to a base name, picked
// from the terminal background. Suffixed names are returned as is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig resolves theme to a palette. COBALT_COLOR_THEME replaces
// theme, unknown names fall back to default-dark, and COBALT_COLOR_<ROLE>
// overrides single colors.
func LoadColorConfig(theme string) ColorConfig {
	if env := os.Getenv(EnvColorTheme); env != "" {
		theme = env
	}
	if theme == "" {
		theme = "default"
	}

	result, ok := Themes[ResolveThemeName(theme)]
	if !ok {
		result = Themes["default-dark"]
	}

	for suffix, field := range result.fields() {
		if v := os.Getenv(envColorPrefix + suffix); v != "" {
			*field = v
		}
	}
	return result
}
