package report

import (
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired palette for the text surrounding the heatmap.
var (
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Heatmap shades, darkest to brightest, indexed by activity level 1..4.
// Level 0 renders as a dim dot rather than a filled block.
var levelColors = [...]lipgloss.Color{
	lipgloss.Color("#0e4429"),
	lipgloss.Color("#006d32"),
	lipgloss.Color("#26a641"),
	lipgloss.Color("#39d353"),
}

// levelHex are the same shades for the HTML/SVG renderer, indexed 0..4.
var levelHex = [...]string{"#2d333b", "#0e4429", "#006d32", "#26a641", "#39d353"}

// LevelStyle returns the lipgloss style for a heatmap cell at the given
// activity level.
func LevelStyle(level domain.ActivityLevel) lipgloss.Style {
	if level <= domain.LevelNone || int(level) > len(levelColors) {
		return StyleDim
	}
	return lipgloss.NewStyle().Foreground(levelColors[level-1])
}

// LevelHex returns the fill color for an SVG cell at the given level.
func LevelHex(level domain.ActivityLevel) string {
	if level < 0 || int(level) >= len(levelHex) {
		return levelHex[0]
	}
	return levelHex[level]
}
