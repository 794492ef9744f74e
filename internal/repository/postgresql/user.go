package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	id, user_code, first_name, last_name, email, password_hash, contact_number,
	dob, nic, role, profile_image, intern_start_date, intern_end_date, active,
	job_role_id, team_id, university, address_line1, address_line2,
	created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.UserCode,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.PasswordHash,
		&u.ContactNumber,
		&u.DOB,
		&u.NIC,
		&u.Role,
		&u.ProfileImage,
		&u.InternStartDate,
		&u.InternEndDate,
		&u.Active,
		&u.JobRoleID,
		&u.TeamID,
		&u.University,
		&u.AddressLine1,
		&u.AddressLine2,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create implements user.Repository. The display code comes from an atomic
// per-role counter bump in the same transaction as the insert, so concurrent
// registrations never mint the same code.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	var created user.User

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		counterQuery := `
			INSERT INTO user_code_counters (role, value)
			VALUES ($1, 1)
			ON CONFLICT (role) DO UPDATE SET value = user_code_counters.value + 1
			RETURNING value
		`

		var seq int
		if err := tx.QueryRow(ctx, counterQuery, newUser.Role).Scan(&seq); err != nil {
			return fmt.Errorf("increment user code counter: %w", err)
		}

		insertQuery := `
			INSERT INTO users (
				user_code, first_name, last_name, email, password_hash, contact_number,
				dob, nic, role, profile_image, intern_start_date, intern_end_date, active,
				job_role_id, team_id, university, address_line1, address_line2
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			RETURNING ` + userColumns

		var err error
		created, err = scanUser(tx.QueryRow(ctx, insertQuery,
			user.FormatUserCode(newUser.Role, seq),
			newUser.FirstName,
			newUser.LastName,
			newUser.Email,
			newUser.PasswordHash,
			newUser.ContactNumber,
			newUser.DOB,
			newUser.NIC,
			newUser.Role,
			newUser.ProfileImage,
			newUser.InternStartDate,
			newUser.InternEndDate,
			newUser.Active,
			newUser.JobRoleID,
			newUser.TeamID,
			newUser.University,
			newUser.AddressLine1,
			newUser.AddressLine2,
		))
		if err != nil {
			return translateUserConstraint(err)
		}

		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// translateUserConstraint maps unique-violation errors on the users table to
// domain sentinels.
func translateUserConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return user.ErrEmailExists
		case strings.Contains(pgErr.ConstraintName, "nic"):
			return user.ErrNICExists
		case strings.Contains(pgErr.ConstraintName, "user_code"):
			return user.ErrUserCodeConflict
		}
	}
	return err
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// List implements user.Repository.
func (r *userRepositoryImpl) List(ctx context.Context, active *bool) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.user_code, u.first_name, u.last_name, u.email, u.password_hash,
			   u.contact_number, u.dob, u.nic, u.role, u.profile_image,
			   u.intern_start_date, u.intern_end_date, u.active,
			   u.job_role_id, u.team_id, u.university, u.address_line1, u.address_line2,
			   u.created_at, u.updated_at,
			   jr.name AS job_role_name, t.name AS team_name
		FROM users u
		LEFT JOIN job_roles jr ON jr.id = u.job_role_id
		LEFT JOIN teams t ON t.id = u.team_id
	`

	args := []interface{}{}
	if active != nil {
		query += ` WHERE u.active = $1`
		args = append(args, *active)
	}
	query += ` ORDER BY u.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.UserCode,
			&u.FirstName,
			&u.LastName,
			&u.Email,
			&u.PasswordHash,
			&u.ContactNumber,
			&u.DOB,
			&u.NIC,
			&u.Role,
			&u.ProfileImage,
			&u.InternStartDate,
			&u.InternEndDate,
			&u.Active,
			&u.JobRoleID,
			&u.TeamID,
			&u.University,
			&u.AddressLine1,
			&u.AddressLine2,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.JobRoleName,
			&u.TeamName,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.Repository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, email = $3, contact_number = $4,
			dob = $5, nic = $6, profile_image = $7, intern_start_date = $8,
			intern_end_date = $9, job_role_id = $10, team_id = $11,
			university = $12, address_line1 = $13, address_line2 = $14,
			updated_at = NOW()
		WHERE id = $15
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		u.FirstName,
		u.LastName,
		u.Email,
		u.ContactNumber,
		u.DOB,
		u.NIC,
		u.ProfileImage,
		u.InternStartDate,
		u.InternEndDate,
		u.JobRoleID,
		u.TeamID,
		u.University,
		u.AddressLine1,
		u.AddressLine2,
		u.ID,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return translateUserConstraint(err)
	}

	return nil
}

// SetActive implements user.Repository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, active, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return err
	}

	return nil
}

// SetPassword implements user.Repository.
func (r *userRepositoryImpl) SetPassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, passwordHash, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return err
	}

	return nil
}

// Delete implements user.Repository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// CountActive implements user.Repository.
func (r *userRepositoryImpl) CountActive(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE active = TRUE`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByTeam implements user.Repository.
func (r *userRepositoryImpl) CountByTeam(ctx context.Context, teamID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE team_id = $1`, teamID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountByJobRole implements user.Repository.
func (r *userRepositoryImpl) CountByJobRole(ctx context.Context, jobRoleID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE job_role_id = $1`, jobRoleID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
