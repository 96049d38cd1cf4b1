package commands

import (
	"context"
)

// LockOverdueNotesCommandHandler finalizes validated notes that stayed
// unlocked past the configured cutoff. Runs from the nightly job.
type LockOverdueNotesCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewLockOverdueNotesCommandHandler creates a handler for the locking sweep.
func NewLockOverdueNotesCommandHandler(uowFactory NoteUoWFactory) LockOverdueNotesCommandHandler {
	return LockOverdueNotesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle finalizes every validated note dated before the cutoff in a single
// transaction and reports how many were locked.
func (h *LockOverdueNotesCommandHandler) Handle(ctx context.Context, cmd LockOverdueNotesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.DeliveryNoteRepository()
	notes, err := noteRepo.GetAllValidatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	locked := 0
	for _, note := range notes {
		if err = note.Finalize(); err != nil {
			return 0, err
		}

		if err = noteRepo.Update(ctx, note); err != nil {
			return 0, err
		}

		locked++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return locked, nil
}
