package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/apperror"
	"go-careerhub-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		user := &domain.User{Username: "eve", Email: "eve@example.edu", Role: "admin"}
		_, err := uc.Register(ctx, user, "password123")

		assertAppErrorCode(t, err, http.StatusBadRequest)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should pass a duplicate email conflict through unchanged", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(apperror.Conflict("User with this email already exists"))

		user := &domain.User{Username: "alice", Email: "alice@example.edu", Role: domain.RoleStudent}
		_, err := uc.Register(ctx, user, "password123")

		assertAppErrorCode(t, err, http.StatusConflict)
	})

	t.Run("Should hash the password and return a token pair", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 1
			}).
			Return(nil)

		user := &domain.User{Username: "alice", Email: "alice@example.edu", Role: domain.RoleStudent}
		pair, err := uc.Register(ctx, user, "password123")

		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.True(t, auth.CheckPassword(user.PasswordHash, "password123"))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := auth.HashPassword("correct-horse", bcrypt.MinCost)
	stored := &domain.User{
		ID:           7,
		Username:     "bob",
		Email:        "bob@example.edu",
		PasswordHash: hash,
		Role:         domain.RoleAlumni,
	}

	t.Run("Should not reveal whether the email is registered", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		mockRepo.On("GetByEmail", ctx, "ghost@example.edu").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(ctx, "ghost@example.edu", "whatever")
		assertAppErrorCode(t, err, http.StatusUnauthorized)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Should reject a wrong password with the same message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		mockRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil)

		_, _, err := uc.Login(ctx, stored.Email, "wrong-password")
		assertAppErrorCode(t, err, http.StatusUnauthorized)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})

	t.Run("Should return the user and a token pair on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		mockRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil)

		user, pair, err := uc.Login(ctx, stored.Email, "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	tokens := newTestTokens()

	t.Run("Should reject a garbage token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, bcrypt.MinCost)

		_, err := uc.Refresh(ctx, "not-a-jwt")
		assertAppErrorCode(t, err, http.StatusUnauthorized)
	})

	t.Run("Should reject an access token used as refresh", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, bcrypt.MinCost)

		access, _, err := tokens.GeneratePair(7, domain.RoleAlumni)
		assert.NoError(t, err)

		_, err = uc.Refresh(ctx, access)
		assertAppErrorCode(t, err, http.StatusUnauthorized)
	})

	t.Run("Should reject when the user no longer exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, bcrypt.MinCost)

		_, refresh, err := tokens.GeneratePair(42, domain.RoleStudent)
		assert.NoError(t, err)

		mockRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrNotFound)

		_, err = uc.Refresh(ctx, refresh)
		assertAppErrorCode(t, err, http.StatusUnauthorized)
	})

	t.Run("Should issue a fresh pair for a valid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens, bcrypt.MinCost)

		_, refresh, err := tokens.GeneratePair(7, domain.RoleAlumni)
		assert.NoError(t, err)

		mockRepo.On("GetByID", ctx, int64(7)).
			Return(&domain.User{ID: 7, Role: domain.RoleAlumni}, nil)

		pair, err := uc.Refresh(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should map a missing user to 404", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTestTokens(), bcrypt.MinCost)

		mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetCurrentUser(ctx, 99)
		assertAppErrorCode(t, err, http.StatusNotFound)
	})
}
