package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/babylog/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a horizontal bar of width cells, filled in proportion
// to value/maxValue.
func RenderBar(value, maxValue, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if maxValue > 0 && value > 0 {
		filled = value * width / maxValue
		if filled == 0 {
			filled = 1
		}
	}
	filled = min(filled, width)
	return StylePurple.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// FormatWeeklyChart renders the seven-day pumping chart, one row per day.
// The selected day, if any, is highlighted.
func FormatWeeklyChart(points []domain.WeeklyPoint, selected string) string {
	peak := 0
	total := 0
	for _, p := range points {
		peak = max(peak, p.Volume)
		total += p.Volume
	}

	var b strings.Builder
	b.WriteString(Header("Pumping this week"))
	b.WriteString("\n")
	for _, p := range points {
		label := fmt.Sprintf("%s %s", p.Label, p.FullDate[5:])
		if p.FullDate == selected {
			label = StyleHeader.Render(label)
		} else {
			label = StyleFg.Render(label)
		}
		fmt.Fprintf(&b, "%s  %s %s\n", label, RenderBar(p.Volume, peak, 24), Dim(fmt.Sprintf("%4dml", p.Volume)))
	}
	fmt.Fprintf(&b, "\n%s %s\n", Dim("Total:"), Bold(fmt.Sprintf("%dml", total)))
	return b.String()
}
