package service

import (
	"context"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/alexanderramin/babylog/internal/stats"
)

type statsService struct {
	records repository.RecordRepo
	now     func() time.Time
}

// NewStatsService loads the relevant day range on every call and delegates
// to the stats package. Nothing is cached.
func NewStatsService(records repository.RecordRepo) StatsService {
	return &statsService{records: records, now: time.Now}
}

func (s *statsService) DailyStats(ctx context.Context, date string) (domain.DailyStats, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return domain.DailyStats{}, err
	}
	records, err := s.records.ListByDayRange(ctx, date, date)
	if err != nil {
		return domain.DailyStats{}, err
	}
	return stats.Daily(records, date)
}

func (s *statsService) WeeklyPumpingSeries(ctx context.Context, anchor string) ([]domain.WeeklyPoint, error) {
	if anchor == "" {
		anchor = domain.DayKey(s.now())
	}
	end, err := domain.ParseDate(anchor)
	if err != nil {
		return nil, err
	}
	from := domain.DayKey(end.AddDate(0, 0, -(stats.WeekLength - 1)))
	records, err := s.records.ListByDayRange(ctx, from, anchor)
	if err != nil {
		return nil, err
	}
	return stats.Weekly(records, anchor)
}
