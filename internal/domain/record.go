package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ActivityRecord is one logged care event. Type selects which of Pumping,
// Feeding or Sleep is set; the other two are always nil.
type ActivityRecord struct {
	ID        string
	BabyID    string
	Type      RecordType
	CreatedAt time.Time
	Note      string

	Pumping *PumpingDetails
	Feeding *FeedingDetails
	Sleep   *SleepDetails
}

type PumpingDetails struct {
	Side        PumpSide
	VolumeTotal int
}

type FeedingDetails struct {
	FeedType FeedType
	AmountML int
}

// SleepDetails stores DurationMinutes independently of StartTime/EndTime;
// the two are not reconciled.
type SleepDetails struct {
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int
}

func NewPumpingRecord(babyID string, at time.Time, side PumpSide, volume int, note string) *ActivityRecord {
	return &ActivityRecord{
		BabyID:    babyID,
		Type:      RecordPumping,
		CreatedAt: at,
		Note:      note,
		Pumping:   &PumpingDetails{Side: side, VolumeTotal: volume},
	}
}

func NewFeedingRecord(babyID string, at time.Time, feedType FeedType, amount int, note string) *ActivityRecord {
	return &ActivityRecord{
		BabyID:    babyID,
		Type:      RecordFeeding,
		CreatedAt: at,
		Note:      note,
		Feeding:   &FeedingDetails{FeedType: feedType, AmountML: amount},
	}
}

func NewSleepRecord(babyID string, at, start time.Time, end *time.Time, minutes int, note string) *ActivityRecord {
	return &ActivityRecord{
		BabyID:    babyID,
		Type:      RecordSleep,
		CreatedAt: at,
		Note:      note,
		Sleep:     &SleepDetails{StartTime: start, EndTime: end, DurationMinutes: minutes},
	}
}

// Validate checks the tag/payload pairing and the variant fields. It does
// not look at ID, which the store assigns.
func (r *ActivityRecord) Validate() error {
	if r.CreatedAt.IsZero() {
		return invalid("created_at", "is required")
	}
	if !ValidRecordTypes[r.Type] {
		return invalid("type", fmt.Sprintf("must be pumping, feeding or sleep, got %q", r.Type))
	}

	switch r.Type {
	case RecordPumping:
		if r.Pumping == nil || r.Feeding != nil || r.Sleep != nil {
			return invalid("type", "pumping record must carry only pumping fields")
		}
		if !ValidPumpSides[r.Pumping.Side] {
			return invalid("side", fmt.Sprintf("must be left, right or both, got %q", r.Pumping.Side))
		}
		if r.Pumping.VolumeTotal < 0 {
			return invalid("volume_total", "must not be negative")
		}
	case RecordFeeding:
		if r.Feeding == nil || r.Pumping != nil || r.Sleep != nil {
			return invalid("type", "feeding record must carry only feeding fields")
		}
		if !ValidFeedTypes[r.Feeding.FeedType] {
			return invalid("feed_type", fmt.Sprintf("must be formula or breast, got %q", r.Feeding.FeedType))
		}
		if r.Feeding.AmountML < 0 {
			return invalid("amount_ml", "must not be negative")
		}
	case RecordSleep:
		if r.Sleep == nil || r.Pumping != nil || r.Feeding != nil {
			return invalid("type", "sleep record must carry only sleep fields")
		}
		if r.Sleep.StartTime.IsZero() {
			return invalid("start_time", "is required")
		}
		if r.Sleep.DurationMinutes < 0 {
			return invalid("duration_minutes", "must not be negative")
		}
	}
	return nil
}

// Title is the one-line summary shown in timelines.
func (r *ActivityRecord) Title() string {
	switch r.Type {
	case RecordPumping:
		if r.Pumping == nil {
			break
		}
		return fmt.Sprintf("Pumped %dml (%s)", r.Pumping.VolumeTotal, SideLabel(r.Pumping.Side))
	case RecordFeeding:
		if r.Feeding == nil {
			break
		}
		return fmt.Sprintf("Fed %dml (%s)", r.Feeding.AmountML, r.Feeding.FeedType)
	case RecordSleep:
		if r.Sleep == nil {
			break
		}
		return fmt.Sprintf("Slept %d min", r.Sleep.DurationMinutes)
	}
	return strings.TrimSpace(string(r.Type))
}

func SideLabel(s PumpSide) string {
	switch s {
	case SideBoth:
		return "Both Sides"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return string(s)
	}
}

// SleepDurationMinutes returns the whole minutes between start and end,
// rounded to nearest and floored at zero.
func SleepDurationMinutes(start, end time.Time) int {
	mins := int(math.Round(end.Sub(start).Minutes()))
	if mins < 0 {
		return 0
	}
	return mins
}
