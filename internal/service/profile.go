package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nsharma-dev/institute_admin/internal/models"
	"github.com/nsharma-dev/institute_admin/internal/repo"
	"github.com/nsharma-dev/institute_admin/internal/transport"
)

type ProfileService struct {
	Repo     *repo.GormRepo
	Validate *validator.Validate
}

func (s *ProfileService) Get(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update applies the caller-owned mutable profile fields. Only gender and
// date of birth may change through this path.
func (s *ProfileService) Update(ctx context.Context, userID uint, req transport.UpdateProfileRequest) (*models.User, error) {
	if err := s.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := map[string]any{}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.DOB != nil {
		dob, err := parseDate(*req.DOB)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date of birth", ErrValidation)
		}
		fields["dob"] = dob
	}

	user, err := s.Repo.UpdateProfile(ctx, userID, fields)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetPublic exposes the limited field set visible to anyone.
func (s *ProfileService) GetPublic(ctx context.Context, userID uint) (*transport.PublicProfile, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &transport.PublicProfile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Gender:    user.Gender,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
	if user.DOB != nil {
		dob := user.DOB.Format("2006-01-02")
		profile.DOB = &dob
	}
	return profile, nil
}
