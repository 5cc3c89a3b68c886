package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// GetMyProfile returns the caller's profile with nested education and
// experience, creating an empty profile on first access.
func (u *profileUsecase) GetMyProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.loadRecords(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// UpdateMyProfile overwrites only the supplied fields. The profile is
// created first if needed, so an update can be the first touch.
func (u *profileUsecase) UpdateMyProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if update.FullName != nil {
		profile.FullName = *update.FullName
	}
	if update.Bio != nil {
		profile.Bio = *update.Bio
	}
	if update.Skills != nil {
		profile.Skills = *update.Skills
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.Location != nil {
		profile.Location = *update.Location
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.loadRecords(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) ListEducation(ctx context.Context, userID int64) ([]domain.Education, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.profileRepo.ListEducation(ctx, profile.ID)
}

// AddEducation appends a record under an existing profile. Unlike the
// profile endpoints this does not get-or-create: the profile must already
// exist.
func (u *profileUsecase) AddEducation(ctx context.Context, userID int64, edu *domain.Education) error {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return err
	}
	edu.ProfileID = profile.ID
	return u.profileRepo.AddEducation(ctx, edu)
}

func (u *profileUsecase) ListExperience(ctx context.Context, userID int64) ([]domain.Experience, error) {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.profileRepo.ListExperience(ctx, profile.ID)
}

func (u *profileUsecase) AddExperience(ctx context.Context, userID int64, exp *domain.Experience) error {
	profile, err := u.requireProfile(ctx, userID)
	if err != nil {
		return err
	}
	exp.ProfileID = profile.ID
	return u.profileRepo.AddExperience(ctx, exp)
}

func (u *profileUsecase) requireProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *profileUsecase) loadRecords(ctx context.Context, profile *domain.Profile) error {
	education, err := u.profileRepo.ListEducation(ctx, profile.ID)
	if err != nil {
		return err
	}
	experience, err := u.profileRepo.ListExperience(ctx, profile.ID)
	if err != nil {
		return err
	}
	if education == nil {
		education = []domain.Education{}
	}
	if experience == nil {
		experience = []domain.Experience{}
	}
	profile.Education = education
	profile.Experience = experience
	return nil
}
