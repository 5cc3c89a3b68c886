package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles. The role is assigned at registration and never changes.
const (
	RoleStudent = "student"
	RoleAlumni  = "alumni"
	RoleFaculty = "faculty"
)

// ValidRole reports whether role is one of the three known role tags.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAlumni || role == RoleFaculty
}

// CanPostOpportunities reports whether a role may create opportunity
// postings at all. Students browse and apply, they never post.
func CanPostOpportunities(role string) bool {
	return role == RoleAlumni || role == RoleFaculty
}

// CanPostOpportunityType applies the per-type restriction on top of
// CanPostOpportunities: research postings are faculty-only.
func CanPostOpportunityType(role, opportunityType string) bool {
	if !CanPostOpportunities(role) {
		return false
	}
	if opportunityType == TypeResearch {
		return role == RoleFaculty
	}
	return true
}

// CanApply reports whether a role may submit applications.
func CanApply(role string) bool {
	return role == RoleStudent
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenPair is the access/refresh pair returned by register, login and
// refresh.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password string) (*TokenPair, error)
	Login(ctx context.Context, email, password string) (*User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
