package auth

import (
	"context"
	"time"
)

// ResetCodeTTL is how long an emailed password-reset code stays valid.
const ResetCodeTTL = 5 * time.Minute

// PasswordReset is one issued reset code. Requesting a new code invalidates
// all earlier codes for the same email.
type PasswordReset struct {
	ID        string
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code is past its validity window at now.
func (p PasswordReset) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// PasswordResetRepository stores issued reset codes.
type PasswordResetRepository interface {
	// Replace deletes any outstanding codes for the email and stores the new one.
	Replace(ctx context.Context, reset PasswordReset) error

	// GetByEmailAndCode returns the matching code or ErrInvalidResetCode.
	GetByEmailAndCode(ctx context.Context, email, code string) (PasswordReset, error)

	// DeleteByEmail removes all codes for an email (after a successful reset).
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteExpired removes codes past their expiry; returns rows removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
