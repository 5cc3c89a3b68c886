package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type opportunityUsecase struct {
	opportunityRepo domain.OpportunityRepository
}

func NewOpportunityUsecase(opportunityRepo domain.OpportunityRepository) domain.OpportunityUsecase {
	return &opportunityUsecase{opportunityRepo: opportunityRepo}
}

// Create enforces the posting rules: only alumni and faculty may post, and
// research postings are faculty-only.
func (u *opportunityUsecase) Create(ctx context.Context, userID int64, role string, opp *domain.Opportunity) error {
	if !domain.CanPostOpportunities(role) {
		return apperror.Forbidden("Only alumni and faculty can create opportunities")
	}
	if !domain.CanPostOpportunityType(role, opp.Type) {
		return apperror.Forbidden("Only faculty members can create research opportunities")
	}
	if opp.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	opp.CreatedBy = userID
	opp.IsActive = true

	return u.opportunityRepo.Create(ctx, opp)
}

func (u *opportunityUsecase) GetByID(ctx context.Context, id int64) (*domain.Opportunity, error) {
	opp, err := u.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Opportunity not found")
		}
		return nil, err
	}
	return opp, nil
}

func (u *opportunityUsecase) List(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, int64, error) {
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return u.opportunityRepo.FetchActive(ctx, filter)
}

func (u *opportunityUsecase) ListMine(ctx context.Context, userID int64) ([]domain.Opportunity, error) {
	return u.opportunityRepo.FetchByCreator(ctx, userID)
}

// Update applies the supplied fields to the posting. Only the creator may
// mutate; everyone else keeps read-only access. The research restriction
// holds on update too, so a posting cannot be retyped past the gate.
func (u *opportunityUsecase) Update(ctx context.Context, userID int64, role string, id int64, update domain.OpportunityUpdate) (*domain.Opportunity, error) {
	opp, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opp.CreatedBy != userID {
		return nil, apperror.Forbidden("You can only modify your own opportunities")
	}

	if update.Title != nil {
		opp.Title = *update.Title
	}
	if update.Description != nil {
		opp.Description = *update.Description
	}
	if update.Type != nil {
		if !domain.CanPostOpportunityType(role, *update.Type) {
			return nil, apperror.Forbidden("Only faculty members can create research opportunities")
		}
		opp.Type = *update.Type
	}
	if update.Company != nil {
		opp.Company = *update.Company
	}
	if update.Location != nil {
		opp.Location = *update.Location
	}
	if update.Requirements != nil {
		opp.Requirements = *update.Requirements
	}
	if update.SalaryRange != nil {
		opp.SalaryRange = *update.SalaryRange
	}
	if update.ApplicationDeadline != nil {
		opp.ApplicationDeadline = update.ApplicationDeadline
	}
	if update.IsActive != nil {
		opp.IsActive = *update.IsActive
	}

	if opp.Title == "" {
		return nil, apperror.BadRequest("Title is required")
	}

	if err := u.opportunityRepo.Update(ctx, opp); err != nil {
		return nil, err
	}
	return opp, nil
}

func (u *opportunityUsecase) Delete(ctx context.Context, userID int64, id int64) error {
	opp, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if opp.CreatedBy != userID {
		return apperror.Forbidden("You can only delete your own opportunities")
	}
	return u.opportunityRepo.Delete(ctx, id)
}
