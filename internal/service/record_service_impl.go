package service

import (
	"context"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/google/uuid"
)

type recordService struct {
	records  repository.RecordRepo
	profiles repository.ProfileRepo
	observer UseCaseObserver
}

func NewRecordService(records repository.RecordRepo, profiles repository.ProfileRepo, observers ...UseCaseObserver) RecordService {
	return &recordService{
		records:  records,
		profiles: profiles,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recordService) ListRecords(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.records.ListRecent(ctx, limit)
}

func (s *recordService) GetRecord(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) CountRecords(ctx context.Context) (int, error) {
	return s.records.Count(ctx)
}

func (s *recordService) AddRecord(ctx context.Context, r *domain.ActivityRecord) (created *domain.ActivityRecord, err error) {
	fields := map[string]any{"type": string(r.Type)}
	defer observe(ctx, s.observer, "add-record", time.Now().UTC(), fields, &err)

	if err = r.Validate(); err != nil {
		return nil, err
	}

	rec := *r
	rec.ID = uuid.New().String()
	if rec.BabyID == "" {
		var profile *domain.BabyProfile
		profile, err = s.profiles.Get(ctx)
		if err != nil {
			return nil, err
		}
		rec.BabyID = profile.ID
	}
	fields["record_id"] = rec.ID

	if err = s.records.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-record", time.Now().UTC(), map[string]any{"record_id": id}, &err)
	return s.records.Delete(ctx, id)
}
