package usecase

import (
	"context"
	"errors"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/auth"
)

type authUsecase struct {
	userRepo   domain.UserRepository
	tokens     *auth.Manager
	bcryptCost int
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.Manager, bcryptCost int) domain.AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates the account and signs the caller in. Duplicate emails
// surface as 409 straight from the repository's unique-violation
// translation; there is no check-then-act window here.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, password string) (*domain.TokenPair, error) {
	if !domain.ValidRole(user.Role) {
		return nil, apperror.BadRequest("Role must be student, alumni or faculty")
	}

	hash, err := auth.HashPassword(password, u.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.PasswordHash = hash

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issuePair(user)
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a wrong password so the response does not
			// reveal which emails are registered.
			return nil, nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, nil, apperror.Internal(err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	pair, err := u.issuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new pair. The user is
// re-read so a token issued before any account change still yields fresh
// role claims.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperror.Unauthorized("User no longer exists")
	}

	return u.issuePair(user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, refresh, err := u.tokens.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
