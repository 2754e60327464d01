package styles

import (
	"github.com/amonks/colormix/internal/color"
	"github.com/charmbracelet/lipgloss"
)

var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(color.Yellow)

	Italic = lipgloss.NewStyle().
		Italic(true).
		Foreground(color.Light)

	File = lipgloss.NewStyle().
		Foreground(color.Blue)

	Success = lipgloss.NewStyle().
		Foreground(color.Green)

	Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(color.Red)
)
