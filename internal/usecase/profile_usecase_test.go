package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetMyProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return empty slices instead of null records", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetOrCreate", ctx, int64(1)).
			Return(&domain.Profile{ID: 3, UserID: 1, Skills: []string{}}, nil)
		mockRepo.On("ListEducation", ctx, int64(3)).Return(nil, nil)
		mockRepo.On("ListExperience", ctx, int64(3)).Return(nil, nil)

		profile, err := uc.GetMyProfile(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, profile.Education)
		assert.NotNil(t, profile.Experience)
		assert.Empty(t, profile.Education)
		assert.Empty(t, profile.Experience)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should overwrite only the supplied fields", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetOrCreate", ctx, int64(1)).
			Return(&domain.Profile{
				ID:       3,
				UserID:   1,
				FullName: "Alice Chen",
				Bio:      "Final year CS student",
				Skills:   []string{"Go"},
			}, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil)
		mockRepo.On("ListEducation", ctx, int64(3)).Return([]domain.Education{}, nil)
		mockRepo.On("ListExperience", ctx, int64(3)).Return([]domain.Experience{}, nil)

		location := "Nairobi"
		skills := []string{"Go", "PostgreSQL"}
		profile, err := uc.UpdateMyProfile(ctx, 1, domain.ProfileUpdate{
			Location: &location,
			Skills:   &skills,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Alice Chen", profile.FullName)
		assert.Equal(t, "Final year CS student", profile.Bio)
		assert.Equal(t, "Nairobi", profile.Location)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.Skills)
	})
}

func TestAddEducation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 when the user has no profile yet", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		err := uc.AddEducation(ctx, 1, &domain.Education{Institution: "MIT", Degree: "BSc"})
		assertAppErrorCode(t, err, http.StatusNotFound)
		mockRepo.AssertNotCalled(t, "AddEducation")
	})

	t.Run("Should attach the record to the caller's profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByUserID", ctx, int64(1)).
			Return(&domain.Profile{ID: 3, UserID: 1}, nil)
		mockRepo.On("AddEducation", ctx, mock.AnythingOfType("*domain.Education")).Return(nil)

		edu := &domain.Education{
			Institution: "MIT",
			Degree:      "BSc",
			StartDate:   time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC),
		}
		err := uc.AddEducation(ctx, 1, edu)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), edu.ProfileID)
	})
}

func TestAddExperience(t *testing.T) {
	ctx := context.Background()

	t.Run("Should 404 when the user has no profile yet", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(mockRepo)

		mockRepo.On("GetByUserID", ctx, int64(1)).Return(nil, domain.ErrNotFound)

		err := uc.AddExperience(ctx, 1, &domain.Experience{Company: "Acme", Position: "Intern"})
		assertAppErrorCode(t, err, http.StatusNotFound)
		mockRepo.AssertNotCalled(t, "AddExperience")
	})
}
