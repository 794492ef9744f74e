package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/auth"
)

// ResetCodeJobs purges expired password-reset codes.
type ResetCodeJobs struct {
	resetRepo auth.PasswordResetRepository
}

func NewResetCodeJobs(resetRepo auth.PasswordResetRepository) *ResetCodeJobs {
	return &ResetCodeJobs{resetRepo: resetRepo}
}

// RegisterJobs registers the purge job.
func (j *ResetCodeJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(
		"purge_expired_reset_codes",
		10*time.Minute,
		j.PurgeExpired,
	)
}

func (j *ResetCodeJobs) PurgeExpired(ctx context.Context) error {
	removed, err := j.resetRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	if removed > 0 {
		slog.Info("Purged expired password reset codes", "count", removed)
	}
	return nil
}
