package domain

import (
	"context"
	"time"
)

// Opportunity types
const (
	TypeJob        = "job"
	TypeInternship = "internship"
	TypeProject    = "project"
	TypeResearch   = "research"
)

type Opportunity struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Type                string     `json:"type"`
	Company             string     `json:"company"`
	Location            string     `json:"location"`
	Requirements        string     `json:"requirements"`
	SalaryRange         string     `json:"salary_range"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	CreatedBy           int64      `json:"created_by"`
	IsActive            bool       `json:"is_active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`

	// Joined creator data for responses
	CreatedByName  *string `json:"created_by_name,omitempty"`
	CreatedByEmail *string `json:"created_by_email,omitempty"`
}

// OpportunityFilter narrows the public listing. Search matches title,
// description or company, case-insensitively.
type OpportunityFilter struct {
	Type   string
	Search string
	Limit  int
	Offset int
}

// OpportunityUpdate carries a partial update; nil fields are left as is.
type OpportunityUpdate struct {
	Title               *string
	Description         *string
	Type                *string
	Company             *string
	Location            *string
	Requirements        *string
	SalaryRange         *string
	ApplicationDeadline *time.Time
	IsActive            *bool
}

type OpportunityRepository interface {
	Create(ctx context.Context, opp *Opportunity) error
	GetByID(ctx context.Context, id int64) (*Opportunity, error)
	// FetchActive lists active postings matching the filter plus the total
	// match count for pagination.
	FetchActive(ctx context.Context, filter OpportunityFilter) ([]Opportunity, int64, error)
	// FetchByCreator lists the creator's postings, active or not.
	FetchByCreator(ctx context.Context, userID int64) ([]Opportunity, error)
	Update(ctx context.Context, opp *Opportunity) error
	Delete(ctx context.Context, id int64) error
}

type OpportunityUsecase interface {
	Create(ctx context.Context, userID int64, role string, opp *Opportunity) error
	GetByID(ctx context.Context, id int64) (*Opportunity, error)
	List(ctx context.Context, filter OpportunityFilter) ([]Opportunity, int64, error)
	ListMine(ctx context.Context, userID int64) ([]Opportunity, error)
	Update(ctx context.Context, userID int64, role string, id int64, update OpportunityUpdate) (*Opportunity, error)
	Delete(ctx context.Context, userID int64, id int64) error
}
