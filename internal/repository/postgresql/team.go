package postgresql

import (
	"context"
	"errors"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

// Create implements team.TeamRepository.
func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (name)
		VALUES ($1)
		RETURNING id, name
	`

	var created team.Team
	err := q.QueryRow(ctx, query, t.Name).Scan(&created.ID, &created.Name)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, err
	}

	return created, nil
}

// GetByID implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	var found team.Team
	err := q.QueryRow(ctx, `SELECT id, name FROM teams WHERE id = $1`, id).Scan(&found.ID, &found.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, err
	}

	return found, nil
}

// GetByName implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByName(ctx context.Context, name string, excludeID string) (*team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name FROM teams WHERE LOWER(name) = LOWER($1)`
	args := []interface{}{name}
	if excludeID != "" {
		query += ` AND id <> $2`
		args = append(args, excludeID)
	}

	var found team.Team
	err := q.QueryRow(ctx, query, args...).Scan(&found.ID, &found.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// List implements team.TeamRepository.
func (r *teamRepositoryImpl) List(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM teams ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

// Update implements team.TeamRepository.
func (r *teamRepositoryImpl) Update(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams
		SET name = $1
		WHERE id = $2
		RETURNING id, name
	`

	var updated team.Team
	err := q.QueryRow(ctx, query, t.Name, t.ID).Scan(&updated.ID, &updated.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.Team{}, team.ErrTeamNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, err
	}

	return updated, nil
}

// Delete implements team.TeamRepository.
func (r *teamRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}

	return nil
}
