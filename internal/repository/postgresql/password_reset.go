package postgresql

import (
	"context"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/auth"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type passwordResetRepositoryImpl struct {
	db *database.DB
}

func NewPasswordResetRepository(db *database.DB) auth.PasswordResetRepository {
	return &passwordResetRepositoryImpl{db: db}
}

// Replace implements auth.PasswordResetRepository. Issuing a new code
// invalidates every earlier code for the same email.
func (r *passwordResetRepositoryImpl) Replace(ctx context.Context, reset auth.PasswordReset) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM password_resets WHERE email = $1`, reset.Email); err != nil {
			return err
		}

		insertQuery := `
			INSERT INTO password_resets (email, code, expires_at)
			VALUES ($1, $2, $3)
		`
		_, err := tx.Exec(ctx, insertQuery, reset.Email, reset.Code, reset.ExpiresAt)
		return err
	})
}

// GetByEmailAndCode implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) GetByEmailAndCode(ctx context.Context, email, code string) (auth.PasswordReset, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, code, expires_at, created_at
		FROM password_resets
		WHERE email = $1 AND code = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var found auth.PasswordReset
	err := q.QueryRow(ctx, query, email, code).Scan(
		&found.ID,
		&found.Email,
		&found.Code,
		&found.ExpiresAt,
		&found.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.PasswordReset{}, auth.ErrInvalidResetCode
		}
		return auth.PasswordReset{}, err
	}

	return found, nil
}

// DeleteByEmail implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) DeleteByEmail(ctx context.Context, email string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM password_resets WHERE email = $1`, email)
	return err
}

// DeleteExpired implements auth.PasswordResetRepository.
func (r *passwordResetRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM password_resets WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
