package testutil

import (
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BaseTime is a fixed Monday morning used by fixtures that need a stable clock.
var BaseTime = time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)

// Record options
type RecordOption func(*domain.ActivityRecord)

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.CreatedAt = t
	}
}

func WithNote(n string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.Note = n
	}
}

func WithBabyID(id string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.BabyID = id
	}
}

func WithSide(s domain.PumpSide) RecordOption {
	return func(r *domain.ActivityRecord) {
		if r.Pumping != nil {
			r.Pumping.Side = s
		}
	}
}

func WithFeedType(ft domain.FeedType) RecordOption {
	return func(r *domain.ActivityRecord) {
		if r.Feeding != nil {
			r.Feeding.FeedType = ft
		}
	}
}

func WithSleepEnd(end time.Time) RecordOption {
	return func(r *domain.ActivityRecord) {
		if r.Sleep != nil {
			r.Sleep.EndTime = &end
		}
	}
}

// WithID sets the record id, for repository tests that bypass the service.
func WithID(id string) RecordOption {
	return func(r *domain.ActivityRecord) {
		r.ID = id
	}
}

func applyRecordOpts(r *domain.ActivityRecord, opts []RecordOption) *domain.ActivityRecord {
	r.ID = uuid.New().String()
	for _, o := range opts {
		o(r)
	}
	return r
}

func NewTestPumping(volume int, opts ...RecordOption) *domain.ActivityRecord {
	r := domain.NewPumpingRecord(domain.DefaultProfileID, BaseTime, domain.SideBoth, volume, "")
	return applyRecordOpts(r, opts)
}

func NewTestFeeding(amount int, opts ...RecordOption) *domain.ActivityRecord {
	r := domain.NewFeedingRecord(domain.DefaultProfileID, BaseTime, domain.FeedFormula, amount, "")
	return applyRecordOpts(r, opts)
}

// NewTestSleep builds a sleep record starting at BaseTime with no end time.
func NewTestSleep(minutes int, opts ...RecordOption) *domain.ActivityRecord {
	r := domain.NewSleepRecord(domain.DefaultProfileID, BaseTime, BaseTime, nil, minutes, "")
	return applyRecordOpts(r, opts)
}

// Profile options
type ProfileOption func(*domain.BabyProfile)

func WithName(n string) ProfileOption {
	return func(p *domain.BabyProfile) {
		p.Name = n
	}
}

func WithDOB(d time.Time) ProfileOption {
	return func(p *domain.BabyProfile) {
		p.DateOfBirth = d
	}
}

func WithHeight(cm string) ProfileOption {
	return func(p *domain.BabyProfile) {
		p.HeightCm = decimal.RequireFromString(cm)
	}
}

func WithWeight(kg string) ProfileOption {
	return func(p *domain.BabyProfile) {
		p.WeightKg = decimal.RequireFromString(kg)
	}
}

func WithGender(g domain.Gender) ProfileOption {
	return func(p *domain.BabyProfile) {
		p.Gender = g
	}
}

// NewTestProfile starts from the seeded default profile.
func NewTestProfile(opts ...ProfileOption) *domain.BabyProfile {
	p := domain.DefaultProfile()
	for _, o := range opts {
		o(&p)
	}
	return &p
}
