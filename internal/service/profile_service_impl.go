package service

import (
	"context"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/repository"
	"github.com/alexanderramin/daybreak/internal/temporal"
)

type profileService struct {
	profiles repository.UserProfileRepo
}

func NewProfileService(profiles repository.UserProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

// SetDayStart moves the logical day boundary. Only future bucketing is
// affected; past activity keeps the dates it was recorded under, except
// derived values (the streak) which are recomputed with the new boundary.
func (s *profileService) SetDayStart(ctx context.Context, hour int) error {
	if err := temporal.ValidateDayStart(hour); err != nil {
		return err
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return err
	}
	profile.DayStartHour = hour
	return s.profiles.Upsert(ctx, profile)
}
