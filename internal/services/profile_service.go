package services

import (
	"context"
	"errors"

	"letify_backend/internal/auth"
	"letify_backend/internal/models"
	"letify_backend/internal/repositories"
	"letify_backend/internal/services/dto"
	"letify_backend/pkg/apperrors"
)

type ProfileService struct {
	profiles *repositories.Repository[models.Profile]
}

func NewProfileService(profiles *repositories.Repository[models.Profile]) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Save replaces the caller's profile. The request has already passed the age check.
func (s *ProfileService) Save(ctx context.Context, caller *auth.Identity, req *dto.ProfileRequest) (*models.Profile, error) {
	p := &models.Profile{
		UserID:   caller.ID,
		Email:    caller.Email,
		FullName: req.FullName,
		Gender:   req.Gender,
		Age:      *req.Age,
		Address:  req.Address,
		Phone:    req.Phone,
		Location: req.Location,
		Interests: models.Interests{
			PropertyTypes: nonNil(req.Interests.PropertyTypes),
			ServiceTypes:  nonNil(req.Interests.ServiceTypes),
		},
		UpdatedAt: models.Now(),
	}

	if err := s.profiles.Put(ctx, models.ProfileKey(caller.ID), p); err != nil {
		return nil, apperrors.OperationFailed(err, "profile", "Failed to save profile")
	}
	return p, nil
}

// Get returns nil without error when the user has not saved a profile yet.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.profiles.Get(ctx, models.ProfileKey(userID))
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.OperationFailed(err, "profile", "Failed to fetch profile")
	}
	return p, nil
}

// ProfileDirectory lists users known from saved profiles.
// Used as the user directory when tokens are validated locally.
type ProfileDirectory struct {
	profiles *repositories.Repository[models.Profile]
}

func NewProfileDirectory(profiles *repositories.Repository[models.Profile]) *ProfileDirectory {
	return &ProfileDirectory{profiles: profiles}
}

func (d *ProfileDirectory) ListUsers(ctx context.Context) ([]auth.Identity, error) {
	all, err := d.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]auth.Identity, 0, len(all))
	for _, p := range all {
		users = append(users, auth.Identity{ID: p.UserID, Email: p.Email})
	}
	return users, nil
}
