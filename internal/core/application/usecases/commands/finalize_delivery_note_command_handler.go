package commands

import (
	"context"
)

// FinalizeDeliveryNoteCommandHandler locks a validated note. A finalized
// note is immutable and can never return to an editable state.
type FinalizeDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewFinalizeDeliveryNoteCommandHandler creates a handler for note finalization.
func NewFinalizeDeliveryNoteCommandHandler(uowFactory NoteUoWFactory) FinalizeDeliveryNoteCommandHandler {
	return FinalizeDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finalization command.
func (h *FinalizeDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd FinalizeDeliveryNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	noteRepo := uow.DeliveryNoteRepository()
	note, err := noteRepo.Get(ctx, cmd.NoteID())
	if err != nil {
		return err
	}

	if err = note.Finalize(); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
