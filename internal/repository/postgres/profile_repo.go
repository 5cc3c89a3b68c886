package postgres

import (
	"context"
	"errors"
	"time"

	"go-careerhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `p.id, p.user_id, p.full_name, p.bio, p.skills, p.phone, p.location,
			p.created_at, p.updated_at, u.email, u.role`

// GetOrCreate inserts an empty profile row if the user has none, then
// selects it. The unique index on user_id makes the insert a no-op for the
// loser of a concurrent first touch, so both callers see the same row.
func (r *profileRepo) GetOrCreate(ctx context.Context, userID int64) (*domain.Profile, error) {
	insert := `INSERT INTO profiles (user_id, skills, created_at, updated_at)
               VALUES ($1, '{}', $2, $2)
               ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, insert, userID, time.Now()); err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, userID)
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
			FROM profiles p
			JOIN users u ON p.user_id = u.id
			WHERE p.user_id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Bio, pq.Array(&p.Skills), &p.Phone, &p.Location,
		&p.CreatedAt, &p.UpdatedAt, &p.UserEmail, &p.UserRole,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		full_name = $2,
		bio = $3,
		skills = $4,
		phone = $5,
		location = $6,
		updated_at = $7
	WHERE id = $1`

	profile.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Bio, pq.Array(profile.Skills),
		profile.Phone, profile.Location, profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) ListEducation(ctx context.Context, profileID int64) ([]domain.Education, error) {
	query := `SELECT id, profile_id, institution, degree, field_of_study, start_date, end_date, grade
              FROM education WHERE profile_id = $1 ORDER BY start_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Education
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Institution, &e.Degree,
			&e.FieldOfStudy, &e.StartDate, &e.EndDate, &e.Grade); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *profileRepo) AddEducation(ctx context.Context, edu *domain.Education) error {
	query := `INSERT INTO education (profile_id, institution, degree, field_of_study, start_date, end_date, grade)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		edu.ProfileID, edu.Institution, edu.Degree, edu.FieldOfStudy,
		edu.StartDate, edu.EndDate, edu.Grade,
	).Scan(&edu.ID)
}

func (r *profileRepo) ListExperience(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	query := `SELECT id, profile_id, company, position, description, start_date, end_date, is_current
              FROM experience WHERE profile_id = $1 ORDER BY start_date DESC, id DESC`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Company, &e.Position,
			&e.Description, &e.StartDate, &e.EndDate, &e.IsCurrent); err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *profileRepo) AddExperience(ctx context.Context, exp *domain.Experience) error {
	query := `INSERT INTO experience (profile_id, company, position, description, start_date, end_date, is_current)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.ProfileID, exp.Company, exp.Position, exp.Description,
		exp.StartDate, exp.EndDate, exp.IsCurrent,
	).Scan(&exp.ID)
}
