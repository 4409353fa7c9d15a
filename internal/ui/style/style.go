// Package style renders console output with semantic lipgloss styles.
//
// Helpers are named for what the text means (Success, Error, Muted), never
// for how it looks. With styling disabled every helper returns its input
// unchanged, so output stays free of ANSI codes when piped.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type role int

const (
	roleSuccess role = iota
	roleWarning
	roleError
	roleInfo
	roleMuted
	roleHeader
	rolePrompt
	roleCount
)

var (
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
)

// Init turns styling on or off and selects a theme. NO_COLOR and
// COBALT_NO_COLOR win over enable.
func Init(enable bool, theme string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("COBALT_NO_COLOR") != "" {
		enable = false
	}

	enabled = enable
	if !enabled {
		return
	}

	// The console only runs styled on a terminal; skip lipgloss's own
	// detection so 0-255 colors always render.
	lipgloss.SetColorProfile(termenv.ANSI256)

	colors = LoadColorConfig(theme)
	for r, value := range map[role]string{
		roleSuccess: colors.Success,
		roleWarning: colors.Warning,
		roleError:   colors.Error,
		roleInfo:    colors.Info,
		roleMuted:   colors.Muted,
		roleHeader:  colors.Header,
		rolePrompt:  colors.Prompt,
	} {
		styles[r] = makeStyle(value)
	}
	styles[rolePrompt] = styles[rolePrompt].Bold(true)
}

// GetColors returns the active theme, or the zero ColorConfig before
// styling was enabled.
func GetColors() ColorConfig {
	return colors
}

// makeStyle maps a theme value to a style: "bold" or an ANSI color 0-255.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(r role, text string) string {
	if !enabled {
		return text
	}
	return styles[r].Render(text)
}

// Enabled reports whether helpers emit ANSI codes.
func Enabled() bool {
	return enabled
}

// PromptStyle is the console prompt style; unstyled when disabled.
func PromptStyle() lipgloss.Style {
	if !enabled {
		return lipgloss.NewStyle()
	}
	return styles[rolePrompt]
}

func Success(text string) string { return render(roleSuccess, text) }
func Warning(text string) string { return render(roleWarning, text) }
func Error(text string) string   { return render(roleError, text) }
func Info(text string) string    { return render(roleInfo, text) }
func Header(text string) string  { return render(roleHeader, text) }
func Muted(text string) string   { return render(roleMuted, text) }
