// Package stats derives daily and weekly summaries from activity records.
// Every function is a pure computation over the slice it is given.
package stats

import (
	"math"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// WeekLength is the number of days in a weekly series.
const WeekLength = 7

// Daily summarises the records whose CreatedAt falls on date (YYYY-MM-DD),
// each record judged in its own UTC offset.
func Daily(records []*domain.ActivityRecord, date string) (domain.DailyStats, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.DailyStats{}, err
	}
	return daily(records, date), nil
}

func daily(records []*domain.ActivityRecord, date string) domain.DailyStats {
	var pumpTotal, pumpCount, feedTotal, sleepMinutes int

	for _, r := range records {
		if domain.DayKey(r.CreatedAt) != date {
			continue
		}
		switch r.Type {
		case domain.RecordPumping:
			if r.Pumping != nil {
				pumpTotal += r.Pumping.VolumeTotal
				pumpCount++
			}
		case domain.RecordFeeding:
			if r.Feeding != nil {
				feedTotal += r.Feeding.AmountML
			}
		case domain.RecordSleep:
			if r.Sleep != nil {
				sleepMinutes += r.Sleep.DurationMinutes
			}
		}
	}

	s := domain.DailyStats{
		Date:            date,
		TotalPumpingML:  pumpTotal,
		TotalFeedingML:  feedTotal,
		TotalSleepHours: roundTo(float64(sleepMinutes)/60, 1),
		PumpCount:       pumpCount,
	}
	if pumpCount > 0 {
		s.AvgPumpML = int(math.Round(float64(pumpTotal) / float64(pumpCount)))
	}
	return s
}

// Weekly returns the pumping volume of the seven calendar days ending at
// anchor (YYYY-MM-DD), oldest first.
func Weekly(records []*domain.ActivityRecord, anchor string) ([]domain.WeeklyPoint, error) {
	end, err := domain.ParseDate(anchor)
	if err != nil {
		return nil, err
	}

	points := make([]domain.WeeklyPoint, 0, WeekLength)
	for i := WeekLength - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i)
		key := day.Format(domain.DateLayout)
		points = append(points, domain.WeeklyPoint{
			Label:    WeekdayLabel(day),
			FullDate: key,
			Volume:   daily(records, key).TotalPumpingML,
		})
	}
	return points, nil
}

// WeekdayLabel returns the abbreviated English weekday name, e.g. "Mon".
func WeekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
