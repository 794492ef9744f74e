package postgresql

import (
	"context"
	"errors"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type jobRoleRepositoryImpl struct {
	db *database.DB
}

func NewJobRoleRepository(db *database.DB) jobrole.JobRoleRepository {
	return &jobRoleRepositoryImpl{db: db}
}

// Create implements jobrole.JobRoleRepository.
func (r *jobRoleRepositoryImpl) Create(ctx context.Context, j jobrole.JobRole) (jobrole.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_roles (name)
		VALUES ($1)
		RETURNING id, name
	`

	var created jobrole.JobRole
	err := q.QueryRow(ctx, query, j.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return jobrole.JobRole{}, jobrole.ErrJobRoleNameExists
		}
		return jobrole.JobRole{}, err
	}

	return created, nil
}

// GetByID implements jobrole.JobRoleRepository.
func (r *jobRoleRepositoryImpl) GetByID(ctx context.Context, id string) (jobrole.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	var found jobrole.JobRole
	err := q.QueryRow(ctx, `SELECT id, name FROM job_roles WHERE id = $1`, id).Scan(&found.ID, &found.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return jobrole.JobRole{}, jobrole.ErrJobRoleNotFound
		}
		return jobrole.JobRole{}, err
	}

	return found, nil
}

// GetByName implements jobrole.JobRoleRepository.
func (r *jobRoleRepositoryImpl) GetByName(ctx context.Context, name string, excludeID string) (*jobrole.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM job_roles WHERE LOWER(name) = LOWER($1)`
	args := []interface{}{name}
	if excludeID != "" {
		query += ` AND id <> $2`
		args = append(args, excludeID)
	}

	var found jobrole.JobRole
	err := q.QueryRow(ctx, query, args...).Scan(&found.ID, &found.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// List implements jobrole.JobRoleRepository.
func (r *jobRoleRepositoryImpl) List(ctx context.Context) ([]jobrole.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM job_roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []jobrole.JobRole
	for rows.Next() {
		var j jobrole.JobRole
		if err := rows.Scan(&j.ID, &j.Name); err != nil {
			return nil, err
		}
		roles = append(roles, j)
	}

	return roles, rows.Err()
}

// Update implements jobrole.JobRoleRepository.
func (r *jobRoleRepositoryImpl) Update(ctx context.Context, j jobrole.JobRole) (jobrole.JobRole, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_roles
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`

	var updated jobrole.JobRole
	err := q.QueryRow(ctx, query, j.Name, j.ID).Scan(&updated.ID, &updated.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return jobrole.JobRole{}, jobrole.ErrJobRoleNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return jobrole.JobRole{}, jobrole.ErrJobRoleNameExists
		}
		return jobrole.JobRole{}, err
	}

	return updated, nil
}

// Delete implements jobrole.JobRoleRepository.
func (r *jobRoleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM job_roles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return jobrole.ErrJobRoleNotFound
	}

	return nil
}
