package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-careerhub-backend/config"
	_ "go-careerhub-backend/docs"
	v1 "go-careerhub-backend/internal/delivery/http/v1"
	"go-careerhub-backend/internal/repository/postgres"
	"go-careerhub-backend/internal/usecase"
	"go-careerhub-backend/pkg/auth"
	"go-careerhub-backend/pkg/database"
	"go-careerhub-backend/pkg/logger"
	"go-careerhub-backend/pkg/validation"
)

// @title CareerHub API
// @version 1.0
// @description Career services backend: user accounts, profiles, an opportunities board, and application tracking.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT access token.
func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbPool.Close()

	// Register custom validators into gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	tokens := auth.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.JWTIssuer)

	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	opportunityRepo := postgres.NewOpportunityRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, cfg.BcryptCost)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	opportunityUC := usecase.NewOpportunityUsecase(opportunityRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, opportunityRepo)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		OpportunityUC: opportunityUC,
		ApplicationUC: applicationUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Log.Info("Starting server", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Server error", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Forced shutdown", slog.Any("error", err))
	}

	logger.Log.Info("Server stopped")
}
