package commands

import (
	"context"
)

// ReopenDeliveryNoteCommandHandler returns a validated note to draft.
// Reopening a draft is a no-op; a finalized note cannot be reopened.
type ReopenDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewReopenDeliveryNoteCommandHandler creates a handler for reopening notes.
func NewReopenDeliveryNoteCommandHandler(uowFactory NoteUoWFactory) ReopenDeliveryNoteCommandHandler {
	return ReopenDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reopen command.
func (h *ReopenDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd ReopenDeliveryNoteCommand) error {
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

	if err = note.Reopen(); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
