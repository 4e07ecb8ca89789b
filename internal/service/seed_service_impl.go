package service

import (
	"context"
	"slices"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
)

// DefaultSeedDays is the length of the demo history.
const DefaultSeedDays = 7

type seedService struct {
	records  RecordService
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewSeedService(records RecordService, profiles repository.ProfileRepo, observers ...UseCaseObserver) SeedService {
	return &seedService{
		records:  records,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

// SeedDemo logs, per day: three pumping sessions at 08:30, 12:30 and 16:30,
// four formula feeds of 150ml from 07:00 every four hours, and two 90 minute
// naps starting 13:00 and 19:00. Days are written oldest first so listing
// order matches the timeline.
func (s *seedService) SeedDemo(ctx context.Context, days int, now time.Time) (added int, err error) {
	if days <= 0 {
		days = DefaultSeedDays
	}
	startedAt := time.Now().UTC()
	fields := map[string]any{"days": days}
	defer func() {
		fields["added"] = added
		observe(ctx, s.observer, "seed-demo", startedAt, fields, &err)
	}()

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return 0, err
	}

	for i := days - 1; i >= 0; i-- {
		for _, rec := range demoDay(profile.ID, now, i) {
			if _, err = s.records.AddRecord(ctx, rec); err != nil {
				return added, err
			}
			added++
		}
	}
	return added, nil
}

// demoDay builds the records for the day daysAgo before now, in
// chronological order.
func demoDay(babyID string, now time.Time, daysAgo int) []*domain.ActivityRecord {
	y, m, d := now.Date()
	at := func(hour, minute int) time.Time {
		return time.Date(y, m, d-daysAgo, hour, minute, 0, 0, now.Location())
	}

	var out []*domain.ActivityRecord
	for k := 0; k < 4; k++ {
		out = append(out, domain.NewFeedingRecord(babyID, at(7+k*4, 0), domain.FeedFormula, 150, ""))
	}
	for j := 0; j < 3; j++ {
		side := domain.SideLeft
		if j%2 == 0 {
			side = domain.SideBoth
		}
		volume := 120 + (daysAgo*17+j*29)%50
		out = append(out, domain.NewPumpingRecord(babyID, at(8+j*4, 30), side, volume, "Good session"))
	}
	for l := 0; l < 2; l++ {
		start := at(13+l*6, 0)
		end := start.Add(90 * time.Minute)
		out = append(out, domain.NewSleepRecord(babyID, start, start, &end, 90, ""))
	}

	slices.SortStableFunc(out, func(a, b *domain.ActivityRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}
