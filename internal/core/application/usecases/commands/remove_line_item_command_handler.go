package commands

import (
	"context"
)

// RemoveLineItemCommandHandler handles removing a piece from a draft note.
type RemoveLineItemCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewRemoveLineItemCommandHandler creates a handler for item removal.
func NewRemoveLineItemCommandHandler(uowFactory NoteUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command.
// Loads the note, removes the item, and persists the shrunk note.
func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
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

	if err = note.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
