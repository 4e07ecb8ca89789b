package repository

import (
	"context"

	"github.com/alexanderramin/babylog/internal/domain"
)

// ProfileRepo stores the single baby profile.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.BabyProfile, error)
	// Replace overwrites the stored profile wholesale. It returns ErrNotFound
	// when no profile row exists.
	Replace(ctx context.Context, p *domain.BabyProfile) error
}

// ProfileTxRunner runs fn with a ProfileRepo bound to one transaction.
type ProfileTxRunner interface {
	WithinProfileTx(ctx context.Context, fn func(ctx context.Context, profiles ProfileRepo) error) error
}

type RecordRepo interface {
	Create(ctx context.Context, r *domain.ActivityRecord) error
	GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error)
	// ListRecent returns at most limit records, most recently inserted first.
	ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error)
	// ListByDayRange returns records whose created_at falls on a calendar day
	// between fromDay and toDay inclusive (YYYY-MM-DD, read in the record's
	// own offset), in insertion order.
	ListByDayRange(ctx context.Context, fromDay, toDay string) ([]*domain.ActivityRecord, error)
	Count(ctx context.Context) (int, error)
	// Delete removes the record with id. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}
