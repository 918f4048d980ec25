package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

func newTestProfileService(t *testing.T) (*ProfileService, *repo.GormRepo) {
	t.Helper()

	r := newTestRepo(t)
	return &ProfileService{Repo: r, Validate: validator.New()}, r
}

func seedUser(t *testing.T, r *repo.GormRepo) *models.User {
	t.Helper()

	user := &models.User{
		Username:     "ann",
		Email:        "ann@x.com",
		PasswordHash: "irrelevant",
		Role:         "user",
	}
	require.NoError(t, r.CreateUser(context.Background(), user))
	return user
}

func TestProfileService_Update(t *testing.T) {
	svc, r := newTestProfileService(t)
	ctx := context.Background()
	user := seedUser(t, r)

	gender := "Female"
	dob := "1998-03-21"
	updated, err := svc.Update(ctx, user.ID, transport.UpdateProfileRequest{Gender: &gender, DOB: &dob})
	require.NoError(t, err)
	assert.Equal(t, "Female", updated.Gender)
	require.NotNil(t, updated.DOB)
	assert.Equal(t, 1998, updated.DOB.Year())
}

func TestProfileService_Update_InvalidGender(t *testing.T) {
	svc, r := newTestProfileService(t)
	user := seedUser(t, r)

	gender := "invalid"
	_, err := svc.Update(context.Background(), user.ID, transport.UpdateProfileRequest{Gender: &gender})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileService_Update_BadDate(t *testing.T) {
	svc, r := newTestProfileService(t)
	user := seedUser(t, r)

	dob := "21-03-1998"
	_, err := svc.Update(context.Background(), user.ID, transport.UpdateProfileRequest{DOB: &dob})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileService_Update_UnknownUser(t *testing.T) {
	svc, _ := newTestProfileService(t)

	gender := "Other"
	_, err := svc.Update(context.Background(), 9999, transport.UpdateProfileRequest{Gender: &gender})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileService_GetPublic(t *testing.T) {
	svc, r := newTestProfileService(t)
	ctx := context.Background()
	user := seedUser(t, r)

	dob := "1998-03-21"
	_, err := svc.Update(ctx, user.ID, transport.UpdateProfileRequest{DOB: &dob})
	require.NoError(t, err)

	profile, err := svc.GetPublic(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann", profile.Username)
	assert.Equal(t, "user", profile.Role)
	require.NotNil(t, profile.DOB)
	assert.Equal(t, "1998-03-21", *profile.DOB)

	_, err = svc.GetPublic(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
