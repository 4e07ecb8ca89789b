package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
	tx       repository.ProfileTxRunner
	observer UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, tx repository.ProfileTxRunner, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles: profiles,
		tx:       tx,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) GetProfile(ctx context.Context) (*domain.BabyProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) UpdateProfile(ctx context.Context, p *domain.BabyProfile) (stored *domain.BabyProfile, err error) {
	fields := map[string]any{"profile_id": p.ID}
	defer observe(ctx, s.observer, "update-profile", time.Now().UTC(), fields, &err)

	if err = p.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.WithinProfileTx(ctx, func(ctx context.Context, profiles repository.ProfileRepo) error {
		current, err := profiles.Get(ctx)
		if err != nil {
			return err
		}
		if current.ID != p.ID {
			return fmt.Errorf("baby profile %s: %w", p.ID, repository.ErrNotFound)
		}
		return profiles.Replace(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	out := *p
	return &out, nil
}
