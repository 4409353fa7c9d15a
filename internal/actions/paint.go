package actions

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/cobalt/internal/descriptor"
)

// Colors is the enum accepted by Paint. Member order matches paintStyles.
var Colors = &descriptor.EnumType{
	Name:    "Color",
	Members: []string{"Red", "Green", "Blue", "Plain"},
}

var paintStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	lipgloss.NewStyle(),
}
