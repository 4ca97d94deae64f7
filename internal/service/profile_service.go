package service

import (
	"context"

	"github.com/d60-Lab/sns-timeline/internal/model"
	"github.com/d60-Lab/sns-timeline/internal/repository"
)

// ProfileService owns profile writes. Reads happen through TimelineService.
type ProfileService interface {
	// Update upserts the viewer's own profile. Editing another account is
	// ErrPermissionDenied.
	Update(ctx context.Context, viewer *model.User, accountName string, profile *model.Profile) error
}

type profileService struct {
	profiles repository.ProfileRepository
}

func NewProfileService(profiles repository.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Update(ctx context.Context, viewer *model.User, accountName string, profile *model.Profile) error {
	if accountName != viewer.AccountName {
		return ErrPermissionDenied
	}
	profile.UserID = viewer.ID
	return s.profiles.Upsert(ctx, profile)
}
