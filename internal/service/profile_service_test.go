package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/repository"
	"github.com/alexanderramin/babylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_Default(t *testing.T) {
	svc := newTestServices(t)

	p, err := svc.Profiles.GetProfile(context.Background())
	require.NoError(t, err)
	assert.True(t, p.Equal(domain.DefaultProfile()))
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	want := testutil.NewTestProfile(
		testutil.WithName("Bống"),
		testutil.WithDOB(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)),
		testutil.WithHeight("61.3"),
		testutil.WithWeight("6.05"),
		testutil.WithGender(domain.GenderFemale),
	)
	stored, err := svc.Profiles.UpdateProfile(ctx, want)
	require.NoError(t, err)
	assert.True(t, want.Equal(*stored))

	got, err := svc.Profiles.GetProfile(ctx)
	require.NoError(t, err)
	assert.True(t, want.Equal(*got), "got %+v", got)
}

func TestUpdateProfile_Validation(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Profiles.UpdateProfile(ctx, testutil.NewTestProfile(testutil.WithName(" ")))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Profiles.UpdateProfile(ctx, testutil.NewTestProfile(testutil.WithWeight("0")))
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Profiles.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tít", got.Name)
}

func TestUpdateProfile_UnknownIDIsNotFound(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	p := testutil.NewTestProfile()
	p.ID = "baby_02"
	_, err := svc.Profiles.UpdateProfile(ctx, p)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := svc.Profiles.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfileID, got.ID)
}

func TestUpdateProfile_MissingProfileIsNotFound(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.DB.Exec(`DELETE FROM baby_profile`)
	require.NoError(t, err)

	_, err = svc.Profiles.UpdateProfile(context.Background(), testutil.NewTestProfile())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateProfile_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	svc := newTestServicesWithUoW(t, database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 1, Err: boom})
	ctx := context.Background()

	_, err := svc.Profiles.UpdateProfile(ctx, testutil.NewTestProfile(testutil.WithName("Changed")))
	require.ErrorIs(t, err, boom)

	got, err := svc.Profiles.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tít", got.Name)

	events := svc.Observer.Named("update-profile")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}
