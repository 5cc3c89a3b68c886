package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	opportunityRepo domain.OpportunityRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	opportunityRepo domain.OpportunityRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		opportunityRepo: opportunityRepo,
	}
}

// Apply submits a student's application to an opportunity. The duplicate
// pre-check gives a friendly 409 in the common case; the unique constraint
// in the repository covers the race where two applies slip past it.
func (u *applicationUsecase) Apply(ctx context.Context, userID int64, role string, opportunityID int64, coverLetter, resumeURL string) (*domain.Application, error) {
	if !domain.CanApply(role) {
		return nil, apperror.Forbidden("Only students can apply to opportunities")
	}

	if _, err := u.opportunityRepo.GetByID(ctx, opportunityID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Opportunity not found")
		}
		return nil, apperror.Internal(err)
	}

	exists, err := u.applicationRepo.CheckExists(ctx, userID, opportunityID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this opportunity")
	}

	app := &domain.Application{
		UserID:        userID,
		OpportunityID: opportunityID,
		Status:        domain.ApplicationStatusApplied,
		CoverLetter:   coverLetter,
		ResumeURL:     resumeURL,
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID int64) ([]domain.Application, error) {
	return u.applicationRepo.GetByUserID(ctx, userID)
}

// GetMyApplication returns one of the caller's own applications. Foreign
// applications read as not found rather than forbidden, so ids cannot be
// probed for existence.
func (u *applicationUsecase) GetMyApplication(ctx context.Context, userID, applicationID int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}
	if app.UserID != userID {
		return nil, apperror.NotFound("Application not found")
	}
	return app, nil
}

// ListByOpportunity returns all applications against a posting, for its
// creator only.
func (u *applicationUsecase) ListByOpportunity(ctx context.Context, userID, opportunityID int64) ([]domain.Application, error) {
	opp, err := u.opportunityRepo.GetByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Opportunity not found")
		}
		return nil, err
	}
	if opp.CreatedBy != userID {
		return nil, apperror.Forbidden("You can only view applications for your own opportunities")
	}

	return u.applicationRepo.GetByOpportunityID(ctx, opportunityID)
}

// UpdateStatus lets the opportunity's creator move an application to any
// of the four statuses. There is no transition graph: accepted can go back
// to applied if the creator says so.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID, applicationID int64, status string) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperror.BadRequest("Status must be applied, shortlisted, rejected or accepted")
	}

	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, err
	}

	opp, err := u.opportunityRepo.GetByID(ctx, app.OpportunityID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if opp.CreatedBy != userID {
		return nil, apperror.Forbidden("You can only update applications for your own opportunities")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}
