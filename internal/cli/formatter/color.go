package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TypeStyle returns the accent style for a record type: pumping purple,
// feeding blue, sleep yellow.
func TypeStyle(t domain.RecordType) lipgloss.Style {
	switch t {
	case domain.RecordPumping:
		return StylePurple
	case domain.RecordFeeding:
		return StyleBlue
	case domain.RecordSleep:
		return StyleYellow
	default:
		return StyleDim
	}
}

// TypeIndicator returns a colored marker such as "● PUMP".
func TypeIndicator(t domain.RecordType) string {
	var label string
	switch t {
	case domain.RecordPumping:
		label = "PUMP"
	case domain.RecordFeeding:
		label = "FEED"
	case domain.RecordSleep:
		label = "SLEEP"
	default:
		label = strings.ToUpper(string(t))
	}
	return TypeStyle(t).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
