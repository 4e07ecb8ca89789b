package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/babylog/internal/domain"
	"gorm.io/gorm"
)

// GormRecordRepo implements RecordRepo on gorm.
type GormRecordRepo struct {
	db *gorm.DB
}

func NewGormRecordRepo(gdb *gorm.DB) *GormRecordRepo {
	return &GormRecordRepo{db: gdb}
}

func (r *GormRecordRepo) Create(ctx context.Context, rec *domain.ActivityRecord) error {
	m := toRecordModel(rec)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("inserting activity record: %w", err)
	}
	return nil
}

func (r *GormRecordRepo) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	var m recordModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("activity record %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading activity record: %w", err)
	}
	return m.toDomain()
}

func (r *GormRecordRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	var models []recordModel
	err := r.db.WithContext(ctx).Order("seq DESC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing recent records: %w", err)
	}
	return recordsToDomain(models)
}

func (r *GormRecordRepo) ListByDayRange(ctx context.Context, fromDay, toDay string) ([]*domain.ActivityRecord, error) {
	var models []recordModel
	err := r.db.WithContext(ctx).
		Where("created_day BETWEEN ? AND ?", fromDay, toDay).
		Order("seq").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing records by day: %w", err)
	}
	return recordsToDomain(models)
}

func (r *GormRecordRepo) Count(ctx context.Context) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&recordModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return int(n), nil
}

func (r *GormRecordRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&recordModel{}).Error; err != nil {
		return fmt.Errorf("deleting activity record: %w", err)
	}
	return nil
}

func recordsToDomain(models []recordModel) ([]*domain.ActivityRecord, error) {
	out := make([]*domain.ActivityRecord, 0, len(models))
	for _, m := range models {
		rec, err := m.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
