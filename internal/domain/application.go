package domain

import (
	"context"
	"time"
)

// Application status values. Any of the four may be set by the posting's
// creator at any time; there is deliberately no transition graph.
const (
	ApplicationStatusApplied     = "applied"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusAccepted    = "accepted"
)

// ValidApplicationStatus reports whether status is one of the four
// enumerated values.
func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		return true
	}
	return false
}

// Application links one student to one opportunity. The (user,
// opportunity) pair is unique; the database constraint is the final word
// under concurrent applies.
type Application struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	OpportunityID int64     `json:"opportunity_id"`
	Status        string    `json:"status"`
	CoverLetter   string    `json:"cover_letter"`
	ResumeURL     string    `json:"resume_url"`
	AppliedAt     time.Time `json:"applied_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Joined data for list responses
	ApplicantName    *string `json:"applicant_name,omitempty"`
	ApplicantEmail   *string `json:"applicant_email,omitempty"`
	OpportunityTitle *string `json:"opportunity_title,omitempty"`
	OpportunityType  *string `json:"opportunity_type,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByUserID(ctx context.Context, userID int64) ([]Application, error)
	GetByOpportunityID(ctx context.Context, opportunityID int64) ([]Application, error)
	CheckExists(ctx context.Context, userID, opportunityID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Student operations
	Apply(ctx context.Context, userID int64, role string, opportunityID int64, coverLetter, resumeURL string) (*Application, error)
	GetMyApplications(ctx context.Context, userID int64) ([]Application, error)
	GetMyApplication(ctx context.Context, userID, applicationID int64) (*Application, error)

	// Creator operations
	ListByOpportunity(ctx context.Context, userID, opportunityID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, userID, applicationID int64, status string) (*Application, error)
}
