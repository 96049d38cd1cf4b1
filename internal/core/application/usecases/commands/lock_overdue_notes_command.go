package commands

import (
	"errors"
	"time"

	"workshop/internal/pkg/guard"
)

var ErrLockOverdueNotesCommandIsNotConstructed = errors.New(
	"LockOverdueNotesCommand must be created via NewLockOverdueNotesCommand constructor",
)

var ErrCutoffIsRequired = errors.New("cutoff must not be zero")

// LockOverdueNotesCommand represents a request to finalize every validated
// note whose document date is older than the cutoff. Issued by the nightly
// locking job rather than a user.
type LockOverdueNotesCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewLockOverdueNotesCommand creates a command to lock overdue notes.
func NewLockOverdueNotesCommand(cutoff time.Time) (LockOverdueNotesCommand, error) {
	cmd := LockOverdueNotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return LockOverdueNotesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LockOverdueNotesCommand) Validate() error {
	return c.guard.Validate(ErrLockOverdueNotesCommandIsNotConstructed)
}

// Cutoff returns the date boundary; validated notes dated before it get locked.
func (c LockOverdueNotesCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *LockOverdueNotesCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
