package service

import (
	"context"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// DefaultListLimit applies when ListRecords is called with limit <= 0.
const DefaultListLimit = 20

type ProfileService interface {
	GetProfile(ctx context.Context) (*domain.BabyProfile, error)
	// UpdateProfile replaces the stored profile wholesale and returns the
	// stored value. It fails with repository.ErrNotFound when the stored
	// profile is gone or p.ID names a different profile.
	UpdateProfile(ctx context.Context, p *domain.BabyProfile) (*domain.BabyProfile, error)
}

type RecordService interface {
	// ListRecords returns up to limit records, most recently added first.
	ListRecords(ctx context.Context, limit int) ([]*domain.ActivityRecord, error)
	// GetRecord fails with repository.ErrNotFound for unknown ids.
	GetRecord(ctx context.Context, id string) (*domain.ActivityRecord, error)
	CountRecords(ctx context.Context) (int, error)
	AddRecord(ctx context.Context, r *domain.ActivityRecord) (*domain.ActivityRecord, error)
	// DeleteRecord is a no-op for unknown ids.
	DeleteRecord(ctx context.Context, id string) error
}

type StatsService interface {
	DailyStats(ctx context.Context, date string) (domain.DailyStats, error)
	// WeeklyPumpingSeries returns the seven days ending at anchor, oldest
	// first. An empty anchor means today.
	WeeklyPumpingSeries(ctx context.Context, anchor string) ([]domain.WeeklyPoint, error)
}

type SeedService interface {
	// SeedDemo appends a demo week of records ending on now's calendar day
	// and returns how many were added.
	SeedDemo(ctx context.Context, days int, now time.Time) (int, error)
}
