package color

import "github.com/charmbracelet/lipgloss"

// Terminal palette for the CLI chrome.
//
// https://ethanschoonover.com/solarized/#the-values
var (
	Yellow = lipgloss.Color("#B58900")
	Red    = lipgloss.Color("#DC322F")
	Blue   = lipgloss.Color("#268BD2")
	Green  = lipgloss.Color("#859900")

	Light = lipgloss.AdaptiveColor{Dark: "#839496", Light: "#657B83"} // base0
)
