package commands

import (
	"context"
)

// ValidateDeliveryNoteCommandHandler moves a draft note to the validated
// state once every item carries a price.
type ValidateDeliveryNoteCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewValidateDeliveryNoteCommandHandler creates a handler for note validation.
func NewValidateDeliveryNoteCommandHandler(uowFactory NoteUoWFactory) ValidateDeliveryNoteCommandHandler {
	return ValidateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the validation command.
// The aggregate rejects notes without items or with unpriced items, leaving
// the note untouched on failure.
func (h *ValidateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd ValidateDeliveryNoteCommand) error {
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

	if err = note.MarkValidated(); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
