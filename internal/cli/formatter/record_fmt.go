package formatter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// DayGroup is the records of one calendar day in display order.
type DayGroup struct {
	Day     string
	Records []*domain.ActivityRecord
}

// GroupByDay buckets records by the calendar day of CreatedAt in each
// record's own offset. Groups are ordered newest day first; records keep
// their input order within a group.
func GroupByDay(records []*domain.ActivityRecord) []DayGroup {
	index := map[string]int{}
	var groups []DayGroup
	for _, r := range records {
		day := domain.DayKey(r.CreatedAt)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	// Keys are YYYY-MM-DD so string order is date order.
	slices.SortStableFunc(groups, func(a, b DayGroup) int {
		return strings.Compare(b.Day, a.Day)
	})
	return groups
}

// FormatRecordList renders records as a table in the order given.
func FormatRecordList(records []*domain.ActivityRecord) string {
	if len(records) == 0 {
		return Dim("No activity logged yet.") + "\n"
	}
	headers := []string{"ID", "WHEN", "TYPE", "DETAIL", "NOTE"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(r.ID[:min(8, len(r.ID))]),
			r.CreatedAt.Format("2006-01-02 15:04"),
			TypeIndicator(r.Type),
			r.Title(),
			Dim(TruncateString(r.Note, 30)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatTimelineEntry renders one timeline line: time, marker and title.
func FormatTimelineEntry(r *domain.ActivityRecord) string {
	line := fmt.Sprintf("%s  %s  %s", Dim(Clock(r.CreatedAt)), TypeIndicator(r.Type), StyleFg.Render(r.Title()))
	if r.Note != "" {
		line += "  " + Dim(TruncateString(r.Note, 40))
	}
	return line
}

// FormatTimeline renders records grouped under relative day headers.
func FormatTimeline(records []*domain.ActivityRecord, now time.Time) string {
	if len(records) == 0 {
		return Dim("No activity logged yet.") + "\n"
	}
	var b strings.Builder
	for i, g := range GroupByDay(records) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(DayHeader(g.Day, now)))
		b.WriteString("\n")
		for _, r := range g.Records {
			b.WriteString("  " + FormatTimelineEntry(r) + "\n")
		}
	}
	return b.String()
}

// FormatRecordDetail renders the card shown by "records show".
func FormatRecordDetail(r *domain.ActivityRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", TypeIndicator(r.Type), Bold(r.Title()))
	fmt.Fprintf(&b, "%s %s\n", Dim("Logged:"), r.CreatedAt.Format(time.RFC3339))
	if r.Sleep != nil {
		fmt.Fprintf(&b, "%s %s\n", Dim("From:  "), r.Sleep.StartTime.Format(time.RFC3339))
		if r.Sleep.EndTime != nil {
			fmt.Fprintf(&b, "%s %s\n", Dim("To:    "), r.Sleep.EndTime.Format(time.RFC3339))
		}
	}
	if r.Note != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Note:  "), r.Note)
	}
	fmt.Fprintf(&b, "%s %s", Dim("ID:    "), Dim(r.ID))
	return RenderBox("Record", b.String()) + "\n"
}
