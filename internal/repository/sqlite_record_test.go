package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordRepo(t *testing.T) *SQLiteRecordRepo {
	t.Helper()
	return NewSQLiteRecordRepo(testutil.NewTestDB(t))
}

func TestRecordRepo_CreateAndGetByID_Pumping(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	rec := testutil.NewTestPumping(120, testutil.WithSide(domain.SideLeft), testutil.WithNote("morning"))
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RecordPumping, got.Type)
	require.NotNil(t, got.Pumping)
	assert.Nil(t, got.Feeding)
	assert.Nil(t, got.Sleep)
	assert.Equal(t, domain.SideLeft, got.Pumping.Side)
	assert.Equal(t, 120, got.Pumping.VolumeTotal)
	assert.Equal(t, "morning", got.Note)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestRecordRepo_CreateAndGetByID_Feeding(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	rec := testutil.NewTestFeeding(150, testutil.WithFeedType(domain.FeedBreast))
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Feeding)
	assert.Nil(t, got.Pumping)
	assert.Equal(t, domain.FeedBreast, got.Feeding.FeedType)
	assert.Equal(t, 150, got.Feeding.AmountML)
}

func TestRecordRepo_CreateAndGetByID_Sleep(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	end := testutil.BaseTime.Add(90 * time.Minute)
	withEnd := testutil.NewTestSleep(90, testutil.WithSleepEnd(end))
	noEnd := testutil.NewTestSleep(30)
	require.NoError(t, repo.Create(ctx, withEnd))
	require.NoError(t, repo.Create(ctx, noEnd))

	got, err := repo.GetByID(ctx, withEnd.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Sleep)
	assert.Equal(t, 90, got.Sleep.DurationMinutes)
	assert.True(t, testutil.BaseTime.Equal(got.Sleep.StartTime))
	require.NotNil(t, got.Sleep.EndTime)
	assert.True(t, end.Equal(*got.Sleep.EndTime))

	got, err = repo.GetByID(ctx, noEnd.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Sleep.EndTime)
}

func TestRecordRepo_PreservesOffset(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	ict := time.FixedZone("ICT", 7*3600)
	at := time.Date(2024, time.January, 5, 23, 30, 0, 0, ict)
	rec := testutil.NewTestPumping(100, testutil.WithCreatedAt(at))
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", domain.DayKey(got.CreatedAt))
	_, offset := got.CreatedAt.Zone()
	assert.Equal(t, 7*3600, offset)
}

func TestRecordRepo_GetByID_NotFound(t *testing.T) {
	repo := newRecordRepo(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordRepo_DuplicateIDRejected(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPumping(10, testutil.WithID("dup"))))
	assert.Error(t, repo.Create(ctx, testutil.NewTestFeeding(10, testutil.WithID("dup"))))
}

func TestRecordRepo_ListRecent_InsertionOrder(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	// created_at deliberately runs backwards relative to insertion.
	var ids []string
	for i := 0; i < 5; i++ {
		rec := testutil.NewTestPumping(10*i, testutil.WithCreatedAt(testutil.BaseTime.Add(-time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Create(ctx, rec))
		ids = append(ids, rec.ID)
	}

	list, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, ids[4], list[0].ID)
	assert.Equal(t, ids[3], list[1].ID)
	assert.Equal(t, ids[2], list[2].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n, "truncated listing must not drop records")
}

func TestRecordRepo_ListByDayRange(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	days := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}
	for i, d := range days {
		at, err := time.Parse(time.RFC3339, fmt.Sprintf("%sT12:00:00Z", d))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, testutil.NewTestPumping(i, testutil.WithCreatedAt(at))))
	}

	list, err := repo.ListByDayRange(ctx, "2024-01-02", "2024-01-03")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-01-02", domain.DayKey(list[0].CreatedAt))
	assert.Equal(t, "2024-01-03", domain.DayKey(list[1].CreatedAt))

	list, err = repo.ListByDayRange(ctx, "2023-12-01", "2023-12-31")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordRepo_ListByDayRange_UsesRecordOffset(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	// 01:00 at +07:00 is still the previous day in UTC.
	ict := time.FixedZone("ICT", 7*3600)
	early := testutil.NewTestPumping(50, testutil.WithCreatedAt(time.Date(2024, time.January, 5, 1, 0, 0, 0, ict)))
	require.NoError(t, repo.Create(ctx, early))

	list, err := repo.ListByDayRange(ctx, "2024-01-05", "2024-01-05")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, early.ID, list[0].ID)
}

func TestRecordRepo_Delete(t *testing.T) {
	repo := newRecordRepo(t)
	ctx := context.Background()

	rec := testutil.NewTestFeeding(90)
	require.NoError(t, repo.Create(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.ID))

	_, err := repo.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Unknown ids are a no-op.
	assert.NoError(t, repo.Delete(ctx, rec.ID))
	assert.NoError(t, repo.Delete(ctx, "never-existed"))
}
