package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/babylog/internal/db"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/alexanderramin/babylog/internal/testutil"
)

type testServices struct {
	DB       *sql.DB
	Profiles ProfileService
	Records  RecordService
	Stats    StatsService
	Seed     SeedService
	Observer *recordingObserver
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newTestServicesWithUoW(t, database, testutil.NewTestUoW(database))
}

func newTestServicesWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork) *testServices {
	t.Helper()
	profileRepo := repository.NewSQLiteProfileRepo(database)
	recordRepo := repository.NewSQLiteRecordRepo(database)
	obs := &recordingObserver{}

	records := NewRecordService(recordRepo, profileRepo, obs)
	return &testServices{
		DB:       database,
		Profiles: NewProfileService(profileRepo, repository.NewSQLiteProfileTx(uow), obs),
		Records:  records,
		Stats:    NewStatsService(recordRepo),
		Seed:     NewSeedService(records, profileRepo, obs),
		Observer: obs,
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) Named(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
