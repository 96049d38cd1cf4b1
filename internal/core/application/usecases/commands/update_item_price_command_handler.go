package commands

import (
	"context"
)

// UpdateItemPriceCommandHandler handles manual price overrides on a line item.
// Allowed while the note is draft or validated; repricing a validated note
// does not reset its status.
type UpdateItemPriceCommandHandler struct {
	uowFactory NoteUoWFactory
}

// NewUpdateItemPriceCommandHandler creates a handler for price overrides.
func NewUpdateItemPriceCommandHandler(uowFactory NoteUoWFactory) UpdateItemPriceCommandHandler {
	return UpdateItemPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price override command.
func (h *UpdateItemPriceCommandHandler) Handle(ctx context.Context, cmd UpdateItemPriceCommand) error {
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

	if err = note.UpdateItemPrice(cmd.ItemID(), cmd.Price()); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
