package domain

import (
	"context"
	"time"
)

// Profile is the CV-like record attached one-to-one to a user. It is
// created lazily: the first GET or PUT on the profile endpoint inserts an
// empty row guarded by the user_id uniqueness constraint, so concurrent
// first touches cannot produce duplicates.
type Profile struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Bio       string    `json:"bio"`
	Skills    []string  `json:"skills"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined user data for responses
	UserEmail string `json:"user_email,omitempty"`
	UserRole  string `json:"user_role,omitempty"`

	// Nested records, loaded for the profile detail response
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
}

type Education struct {
	ID           int64      `json:"id"`
	ProfileID    int64      `json:"profile_id"`
	Institution  string     `json:"institution"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Grade        string     `json:"grade"`
}

type Experience struct {
	ID          int64      `json:"id"`
	ProfileID   int64      `json:"profile_id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
}

// ProfileUpdate carries the fields of a profile update. Nil means "leave
// as is"; only supplied fields are overwritten.
type ProfileUpdate struct {
	FullName *string
	Bio      *string
	Skills   *[]string
	Phone    *string
	Location *string
}

type ProfileRepository interface {
	// GetOrCreate returns the user's profile, inserting an empty one if
	// none exists yet. Safe under concurrent first access.
	GetOrCreate(ctx context.Context, userID int64) (*Profile, error)
	// GetByUserID returns ErrNotFound when the user has no profile.
	GetByUserID(ctx context.Context, userID int64) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	ListEducation(ctx context.Context, profileID int64) ([]Education, error)
	AddEducation(ctx context.Context, edu *Education) error
	ListExperience(ctx context.Context, profileID int64) ([]Experience, error)
	AddExperience(ctx context.Context, exp *Experience) error
}

type ProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateMyProfile(ctx context.Context, userID int64, update ProfileUpdate) (*Profile, error)
	ListEducation(ctx context.Context, userID int64) ([]Education, error)
	AddEducation(ctx context.Context, userID int64, edu *Education) error
	ListExperience(ctx context.Context, userID int64) ([]Experience, error)
	AddExperience(ctx context.Context, userID int64, exp *Experience) error
}
