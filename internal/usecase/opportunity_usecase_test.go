package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOpportunityCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid students from posting", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		opp := &domain.Opportunity{Title: "Summer internship", Type: domain.TypeInternship}
		err := uc.Create(ctx, 1, domain.RoleStudent, opp)

		assertAppErrorCode(t, err, http.StatusForbidden)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should forbid alumni from posting research", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		opp := &domain.Opportunity{Title: "Lab assistant", Type: domain.TypeResearch}
		err := uc.Create(ctx, 2, domain.RoleAlumni, opp)

		assertAppErrorCode(t, err, http.StatusForbidden)
		assert.Contains(t, err.Error(), "faculty")
	})

	t.Run("Should let faculty post research", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Opportunity")).Return(nil)

		opp := &domain.Opportunity{Title: "Lab assistant", Type: domain.TypeResearch}
		err := uc.Create(ctx, 3, domain.RoleFaculty, opp)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), opp.CreatedBy)
		assert.True(t, opp.IsActive)
	})

	t.Run("Should let alumni post a job", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Opportunity")).Return(nil)

		opp := &domain.Opportunity{Title: "Backend engineer", Type: domain.TypeJob}
		err := uc.Create(ctx, 2, domain.RoleAlumni, opp)

		assert.NoError(t, err)
	})

	t.Run("Should require a title", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		opp := &domain.Opportunity{Type: domain.TypeJob}
		err := uc.Create(ctx, 2, domain.RoleAlumni, opp)

		assertAppErrorCode(t, err, http.StatusBadRequest)
	})
}

func TestOpportunityList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should default the page size", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		expected := domain.OpportunityFilter{Limit: 10, Offset: 0}
		mockRepo.On("FetchActive", ctx, expected).Return([]domain.Opportunity{}, int64(0), nil)

		_, _, err := uc.List(ctx, domain.OpportunityFilter{})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should pass the type and search filter through", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		filter := domain.OpportunityFilter{Type: domain.TypeInternship, Search: "backend", Limit: 5, Offset: 10}
		mockRepo.On("FetchActive", ctx, filter).Return([]domain.Opportunity{}, int64(37), nil)

		_, total, err := uc.List(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, int64(37), total)
	})
}

func TestOpportunityUpdate(t *testing.T) {
	ctx := context.Background()

	existing := func() *domain.Opportunity {
		return &domain.Opportunity{
			ID:        10,
			Title:     "Backend engineer",
			Type:      domain.TypeJob,
			CreatedBy: 2,
			IsActive:  true,
		}
	}

	t.Run("Should forbid updates by anyone but the creator", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(existing(), nil)

		title := "Hijacked"
		_, err := uc.Update(ctx, 999, domain.RoleAlumni, 10, domain.OpportunityUpdate{Title: &title})

		assertAppErrorCode(t, err, http.StatusForbidden)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should forbid an alumni creator from retyping to research", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(existing(), nil)

		research := domain.TypeResearch
		_, err := uc.Update(ctx, 2, domain.RoleAlumni, 10, domain.OpportunityUpdate{Type: &research})

		assertAppErrorCode(t, err, http.StatusForbidden)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should apply only the supplied fields", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).Return(existing(), nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Opportunity")).Return(nil)

		inactive := false
		location := "Remote"
		updated, err := uc.Update(ctx, 2, domain.RoleAlumni, 10, domain.OpportunityUpdate{
			Location: &location,
			IsActive: &inactive,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Backend engineer", updated.Title)
		assert.Equal(t, "Remote", updated.Location)
		assert.False(t, updated.IsActive)
	})

	t.Run("Should map a missing opportunity to 404", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(77)).Return(nil, domain.ErrNotFound)

		_, err := uc.Update(ctx, 2, domain.RoleAlumni, 77, domain.OpportunityUpdate{})
		assertAppErrorCode(t, err, http.StatusNotFound)
	})
}

func TestOpportunityDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid deletion by anyone but the creator", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).
			Return(&domain.Opportunity{ID: 10, CreatedBy: 2}, nil)

		err := uc.Delete(ctx, 999, 10)
		assertAppErrorCode(t, err, http.StatusForbidden)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Should delete the creator's own posting", func(t *testing.T) {
		mockRepo := new(MockOpportunityRepo)
		uc := usecase.NewOpportunityUsecase(mockRepo)

		mockRepo.On("GetByID", ctx, int64(10)).
			Return(&domain.Opportunity{ID: 10, CreatedBy: 2}, nil)
		mockRepo.On("Delete", ctx, int64(10)).Return(nil)

		err := uc.Delete(ctx, 2, 10)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
