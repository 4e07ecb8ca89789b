package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DayHeader labels a calendar day relative to now: "Today", "Yesterday",
// otherwise e.g. "Mon, Jan 2". day is a YYYY-MM-DD key.
func DayHeader(day string, now time.Time) string {
	switch day {
	case domain.DayKey(now):
		return "Today"
	case domain.DayKey(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	t, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return day
	}
	return t.Format("Mon, Jan 2")
}

// Clock formats the time of day of t as "15:04" in t's own offset.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// TruncateString shortens s to maxLen runes, replacing the tail with "...".
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
