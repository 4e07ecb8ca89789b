package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"gorm.io/gorm"
)

// GormProfileRepo implements ProfileRepo and ProfileTxRunner on gorm.
type GormProfileRepo struct {
	db *gorm.DB
}

func NewGormProfileRepo(gdb *gorm.DB) *GormProfileRepo {
	return &GormProfileRepo{db: gdb}
}

func (r *GormProfileRepo) Get(ctx context.Context) (*domain.BabyProfile, error) {
	var m profileModel
	err := r.db.WithContext(ctx).First(&m, "slot = ?", profileSlot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("baby profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading baby profile: %w", err)
	}
	return m.toDomain()
}

func (r *GormProfileRepo) Replace(ctx context.Context, p *domain.BabyProfile) error {
	m := toProfileModel(p)
	res := r.db.WithContext(ctx).Model(&profileModel{}).
		Where("slot = ?", profileSlot).
		Updates(map[string]any{
			"id":         m.ID,
			"name":       m.Name,
			"dob":        m.DOB,
			"height_cm":  m.HeightCm,
			"weight_kg":  m.WeightKg,
			"gender":     m.Gender,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return fmt.Errorf("replacing baby profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("baby profile: %w", ErrNotFound)
	}
	return nil
}

func (r *GormProfileRepo) WithinProfileTx(ctx context.Context, fn func(ctx context.Context, profiles ProfileRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewGormProfileRepo(tx))
	})
}
