package postgres

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type opportunityRepo struct {
	db *pgxpool.Pool
}

func NewOpportunityRepository(db *pgxpool.Pool) domain.OpportunityRepository {
	return &opportunityRepo{db: db}
}

func (r *opportunityRepo) Create(ctx context.Context, opp *domain.Opportunity) error {
	query := `INSERT INTO opportunities (title, description, type, company, location, requirements,
                  salary_range, application_deadline, created_by, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`

	now := time.Now()
	opp.CreatedAt = now
	opp.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		opp.Title, opp.Description, opp.Type, opp.Company, opp.Location, opp.Requirements,
		opp.SalaryRange, opp.ApplicationDeadline, opp.CreatedBy, opp.IsActive,
		opp.CreatedAt, opp.UpdatedAt,
	).Scan(&opp.ID)
}

func (r *opportunityRepo) GetByID(ctx context.Context, id int64) (*domain.Opportunity, error) {
	query := `
		SELECT
			o.id, o.title, o.description, o.type, o.company, o.location, o.requirements,
			o.salary_range, o.application_deadline, o.created_by, o.is_active,
			o.created_at, o.updated_at,
			u.username, u.email
		FROM opportunities o
		LEFT JOIN users u ON o.created_by = u.id
		WHERE o.id = $1`

	var opp domain.Opportunity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&opp.ID, &opp.Title, &opp.Description, &opp.Type, &opp.Company, &opp.Location,
		&opp.Requirements, &opp.SalaryRange, &opp.ApplicationDeadline, &opp.CreatedBy,
		&opp.IsActive, &opp.CreatedAt, &opp.UpdatedAt,
		&opp.CreatedByName, &opp.CreatedByEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &opp, nil
}

// FetchActive lists active postings only. The type filter is an exact
// match; the search term matches title, description or company
// case-insensitively (OR across the three fields).
func (r *opportunityRepo) FetchActive(ctx context.Context, filter domain.OpportunityFilter) ([]domain.Opportunity, int64, error) {
	where := `
		WHERE o.is_active = TRUE
		  AND ($1 = '' OR o.type = $1)
		  AND ($2 = '' OR o.title ILIKE '%' || $2 || '%'
		                OR o.description ILIKE '%' || $2 || '%'
		                OR o.company ILIKE '%' || $2 || '%')`

	query := `
		SELECT
			o.id, o.title, o.description, o.type, o.company, o.location, o.requirements,
			o.salary_range, o.application_deadline, o.created_by, o.is_active,
			o.created_at, o.updated_at,
			u.username, u.email
		FROM opportunities o
		LEFT JOIN users u ON o.created_by = u.id` + where + `
		ORDER BY o.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, filter.Type, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var opportunities []domain.Opportunity
	for rows.Next() {
		var opp domain.Opportunity
		if err := rows.Scan(
			&opp.ID, &opp.Title, &opp.Description, &opp.Type, &opp.Company, &opp.Location,
			&opp.Requirements, &opp.SalaryRange, &opp.ApplicationDeadline, &opp.CreatedBy,
			&opp.IsActive, &opp.CreatedAt, &opp.UpdatedAt,
			&opp.CreatedByName, &opp.CreatedByEmail,
		); err != nil {
			return nil, 0, err
		}
		opportunities = append(opportunities, opp)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM opportunities o` + where
	if err := r.db.QueryRow(ctx, countQuery, filter.Type, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}

	return opportunities, total, nil
}

// FetchByCreator returns every posting by the user, including deactivated
// ones, so creators can manage their own listings.
func (r *opportunityRepo) FetchByCreator(ctx context.Context, userID int64) ([]domain.Opportunity, error) {
	query := `
		SELECT
			o.id, o.title, o.description, o.type, o.company, o.location, o.requirements,
			o.salary_range, o.application_deadline, o.created_by, o.is_active,
			o.created_at, o.updated_at,
			u.username, u.email
		FROM opportunities o
		LEFT JOIN users u ON o.created_by = u.id
		WHERE o.created_by = $1
		ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opportunities []domain.Opportunity
	for rows.Next() {
		var opp domain.Opportunity
		if err := rows.Scan(
			&opp.ID, &opp.Title, &opp.Description, &opp.Type, &opp.Company, &opp.Location,
			&opp.Requirements, &opp.SalaryRange, &opp.ApplicationDeadline, &opp.CreatedBy,
			&opp.IsActive, &opp.CreatedAt, &opp.UpdatedAt,
			&opp.CreatedByName, &opp.CreatedByEmail,
		); err != nil {
			return nil, err
		}
		opportunities = append(opportunities, opp)
	}
	return opportunities, rows.Err()
}

func (r *opportunityRepo) Update(ctx context.Context, opp *domain.Opportunity) error {
	query := `UPDATE opportunities SET
		title = $2,
		description = $3,
		type = $4,
		company = $5,
		location = $6,
		requirements = $7,
		salary_range = $8,
		application_deadline = $9,
		is_active = $10,
		updated_at = $11
	WHERE id = $1`

	opp.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		opp.ID, opp.Title, opp.Description, opp.Type, opp.Company, opp.Location,
		opp.Requirements, opp.SalaryRange, opp.ApplicationDeadline, opp.IsActive,
		opp.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *opportunityRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM opportunities WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
