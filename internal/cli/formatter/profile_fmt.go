package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// FormatProfile renders the profile card shown by "profile show".
func FormatProfile(p *domain.BabyProfile, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Bold(p.Name), Dim(domain.AgeLabel(p.DateOfBirth, now)))
	fmt.Fprintf(&b, "%s %s\n", Dim("Born:  "), domain.DayKey(p.DateOfBirth))
	fmt.Fprintf(&b, "%s %s cm\n", Dim("Height:"), p.HeightCm.String())
	fmt.Fprintf(&b, "%s %s kg\n", Dim("Weight:"), p.WeightKg.String())
	fmt.Fprintf(&b, "%s %s\n", Dim("Gender:"), p.Gender)
	fmt.Fprintf(&b, "%s %s", Dim("ID:    "), Dim(p.ID))
	return RenderBox("Baby profile", b.String())
}
