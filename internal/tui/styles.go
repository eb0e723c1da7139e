package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	titleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(highlight)

	valueStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Foreground(lipgloss.Color("#FFCC00"))

	helpStyle = lipgloss.NewStyle().
			Foreground(subtle)
)

// palette is the color cycle bound to the "c" key.
var palette = []gg.RGBA{
	gg.Hex("#FFCC00"),
	gg.Hex("#FF5555"),
	gg.Hex("#3366FF"),
	gg.Hex("#43BF6D"),
}
