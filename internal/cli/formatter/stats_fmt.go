package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDim).
	Padding(0, 2)

func card(title, value, sub string, style lipgloss.Style) string {
	body := Dim(title) + "\n" + style.Bold(true).Render(value)
	if sub != "" {
		body += "\n" + Dim(sub)
	}
	return cardStyle.Render(body)
}

// FormatDailyStats renders the detail cards for one day.
func FormatDailyStats(s domain.DailyStats, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Details for " + DayHeader(s.Date, now)))
	b.WriteString("\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Pumped", fmt.Sprintf("%dml", s.TotalPumpingML), fmt.Sprintf("%d sessions", s.PumpCount), StylePurple),
		card("Avg / pump", fmt.Sprintf("%dml", s.AvgPumpML), "", StylePurple),
		card("Fed", fmt.Sprintf("%dml", s.TotalFeedingML), "", StyleBlue),
		card("Slept", fmt.Sprintf("%.1fh", s.TotalSleepHours), "", StyleYellow),
	)
	b.WriteString(cards)
	b.WriteString("\n")
	return b.String()
}
