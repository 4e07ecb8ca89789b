package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/shopspring/decimal"
)

const profileSlot = 1

type profileModel struct {
	Slot      int    `gorm:"primaryKey;autoIncrement:false"`
	ID        string `gorm:"column:id;not null"`
	Name      string `gorm:"not null"`
	DOB       string `gorm:"column:dob;not null"`
	HeightCm  string `gorm:"column:height_cm;not null"`
	WeightKg  string `gorm:"column:weight_kg;not null"`
	Gender    string `gorm:"not null"`
	UpdatedAt time.Time
}

func (profileModel) TableName() string { return "baby_profile" }

// recordModel mirrors the SQLite activity_records table. Timestamps are kept
// as text so the offset a record was logged in survives the round trip.
type recordModel struct {
	Seq             uint    `gorm:"primaryKey;autoIncrement"`
	ID              string  `gorm:"column:id;uniqueIndex;not null"`
	BabyID          string  `gorm:"column:baby_id;not null"`
	Type            string  `gorm:"index:idx_records_type;not null"`
	CreatedAtText   string  `gorm:"column:created_at;not null"`
	CreatedDay      string  `gorm:"index:idx_records_created_day;not null"`
	Note            string  `gorm:"not null;default:''"`
	Side            *string `gorm:"column:side"`
	VolumeTotal     *int    `gorm:"column:volume_total"`
	FeedType        *string `gorm:"column:feed_type"`
	AmountML        *int    `gorm:"column:amount_ml"`
	StartTime       *string `gorm:"column:start_time"`
	EndTime         *string `gorm:"column:end_time"`
	DurationMinutes *int    `gorm:"column:duration_minutes"`
}

func (recordModel) TableName() string { return "activity_records" }

func toProfileModel(p *domain.BabyProfile) profileModel {
	return profileModel{
		Slot:     profileSlot,
		ID:       p.ID,
		Name:     p.Name,
		DOB:      domain.DayKey(p.DateOfBirth),
		HeightCm: p.HeightCm.String(),
		WeightKg: p.WeightKg.String(),
		Gender:   string(p.Gender),
	}
}

func (m profileModel) toDomain() (*domain.BabyProfile, error) {
	dob, err := time.Parse(domain.DateLayout, m.DOB)
	if err != nil {
		return nil, fmt.Errorf("parsing dob %q: %w", m.DOB, err)
	}
	height, err := decimal.NewFromString(m.HeightCm)
	if err != nil {
		return nil, fmt.Errorf("parsing height_cm %q: %w", m.HeightCm, err)
	}
	weight, err := decimal.NewFromString(m.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("parsing weight_kg %q: %w", m.WeightKg, err)
	}
	return &domain.BabyProfile{
		ID:          m.ID,
		Name:        m.Name,
		DateOfBirth: dob,
		HeightCm:    height,
		WeightKg:    weight,
		Gender:      domain.Gender(m.Gender),
	}, nil
}

func toRecordModel(r *domain.ActivityRecord) recordModel {
	m := recordModel{
		ID:            r.ID,
		BabyID:        r.BabyID,
		Type:          string(r.Type),
		CreatedAtText: r.CreatedAt.Format(timeLayout),
		CreatedDay:    domain.DayKey(r.CreatedAt),
		Note:          r.Note,
	}
	switch {
	case r.Pumping != nil:
		side := string(r.Pumping.Side)
		vol := r.Pumping.VolumeTotal
		m.Side, m.VolumeTotal = &side, &vol
	case r.Feeding != nil:
		ft := string(r.Feeding.FeedType)
		amt := r.Feeding.AmountML
		m.FeedType, m.AmountML = &ft, &amt
	case r.Sleep != nil:
		start := r.Sleep.StartTime.Format(timeLayout)
		dur := r.Sleep.DurationMinutes
		m.StartTime, m.DurationMinutes = &start, &dur
		if r.Sleep.EndTime != nil {
			end := r.Sleep.EndTime.Format(timeLayout)
			m.EndTime = &end
		}
	}
	return m
}

func (m recordModel) toDomain() (*domain.ActivityRecord, error) {
	created, err := parseTime("created_at", m.CreatedAtText)
	if err != nil {
		return nil, err
	}
	r := &domain.ActivityRecord{
		ID:        m.ID,
		BabyID:    m.BabyID,
		Type:      domain.RecordType(m.Type),
		CreatedAt: created,
		Note:      m.Note,
	}
	switch r.Type {
	case domain.RecordPumping:
		r.Pumping = &domain.PumpingDetails{
			Side:        domain.PumpSide(deref(m.Side)),
			VolumeTotal: deref(m.VolumeTotal),
		}
	case domain.RecordFeeding:
		r.Feeding = &domain.FeedingDetails{
			FeedType: domain.FeedType(deref(m.FeedType)),
			AmountML: deref(m.AmountML),
		}
	case domain.RecordSleep:
		start, err := parseTime("start_time", deref(m.StartTime))
		if err != nil {
			return nil, err
		}
		sleep := &domain.SleepDetails{StartTime: start, DurationMinutes: deref(m.DurationMinutes)}
		if m.EndTime != nil {
			end, err := parseTime("end_time", *m.EndTime)
			if err != nil {
				return nil, err
			}
			sleep.EndTime = &end
		}
		r.Sleep = sleep
	default:
		return nil, fmt.Errorf("activity record %s has unknown type %q", m.ID, m.Type)
	}
	return r, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
