package postgres

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The UNIQUE(user_id, opportunity_id)
// constraint decides the loser of racing duplicate applies; that loser
// gets a 409, not a raw storage error.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (user_id, opportunity_id, status, cover_letter, resume_url, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.UserID, app.OpportunityID, app.Status, app.CoverLetter, app.ResumeURL,
		app.AppliedAt, app.UpdatedAt,
	).Scan(&app.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied to this opportunity")
		}
		return err
	}
	return nil
}

// GetByID retrieves an application with joined applicant and opportunity data
func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.user_id, a.opportunity_id, a.status, a.cover_letter, a.resume_url,
			a.applied_at, a.updated_at,
			u.username, u.email, o.title, o.type
		FROM applications a
		LEFT JOIN users u ON a.user_id = u.id
		LEFT JOIN opportunities o ON a.opportunity_id = o.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.UserID, &app.OpportunityID, &app.Status, &app.CoverLetter, &app.ResumeURL,
		&app.AppliedAt, &app.UpdatedAt,
		&app.ApplicantName, &app.ApplicantEmail, &app.OpportunityTitle, &app.OpportunityType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByUserID retrieves all applications submitted by a user
func (r *applicationRepo) GetByUserID(ctx context.Context, userID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.user_id, a.opportunity_id, a.status, a.cover_letter, a.resume_url,
			a.applied_at, a.updated_at,
			o.title, o.type
		FROM applications a
		LEFT JOIN opportunities o ON a.opportunity_id = o.id
		WHERE a.user_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.OpportunityID, &app.Status, &app.CoverLetter, &app.ResumeURL,
			&app.AppliedAt, &app.UpdatedAt,
			&app.OpportunityTitle, &app.OpportunityType,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// GetByOpportunityID retrieves all applications against a posting with
// joined applicant data for the creator's review view
func (r *applicationRepo) GetByOpportunityID(ctx context.Context, opportunityID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.user_id, a.opportunity_id, a.status, a.cover_letter, a.resume_url,
			a.applied_at, a.updated_at,
			u.username, u.email
		FROM applications a
		LEFT JOIN users u ON a.user_id = u.id
		WHERE a.opportunity_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, opportunityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UserID, &app.OpportunityID, &app.Status, &app.CoverLetter, &app.ResumeURL,
			&app.AppliedAt, &app.UpdatedAt,
			&app.ApplicantName, &app.ApplicantEmail,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

// CheckExists checks if an application already exists for the (user, opportunity) pair
func (r *applicationRepo) CheckExists(ctx context.Context, userID, opportunityID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND opportunity_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, opportunityID).Scan(&exists)
	return exists, err
}

// UpdateStatus updates the status of an application and sets updated_at
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
