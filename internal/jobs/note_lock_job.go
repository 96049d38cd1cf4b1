package jobs

import (
	"context"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NoteLockJob finalizes validated delivery notes that stayed unlocked past
// the configured number of days. Runs nightly so stale documents do not
// linger in an editable state.
type NoteLockJob struct {
	handler       commands.LockOverdueNotesCommandHandler
	lockAfterDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewNoteLockJob creates a job that locks overdue notes.
// lockAfterDays controls how old a validated note's document date must be
// before the nightly sweep finalizes it.
func NewNoteLockJob(
	handler commands.LockOverdueNotesCommandHandler,
	lockAfterDays int,
	logger *slog.Logger,
) *NoteLockJob {
	return &NoteLockJob{
		handler:       handler,
		lockAfterDays: lockAfterDays,
		cron:          cron.New(),
		logger:        logger.With("component", "note_lock_job"),
	}
}

// Start schedules the locking sweep to run nightly at 02:00.
func (j *NoteLockJob) Start() error {
	_, err := j.cron.AddFunc("0 2 * * *", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -j.lockAfterDays)
		cmd, cmdErr := commands.NewLockOverdueNotesCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Note lock job misconfigured", "error", cmdErr)
			return
		}

		locked, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Note lock job failed", "error", handleErr)
			return
		}

		if locked > 0 {
			j.logger.InfoContext(ctx, "Locked overdue notes", "count", locked, "cutoff", cutoff)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Note lock job started (running nightly)")
	return nil
}

// Stop stops the note lock job.
func (j *NoteLockJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Note lock job stopped")
}
