package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/deliverynote"
)

// CreateDeliveryNoteCommandHandler handles the business logic for opening a
// draft delivery note: it reserves the next sequence number and persists the
// empty draft in one transaction.
type CreateDeliveryNoteCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDeliveryNoteCommandHandler creates a handler for note creation.
// Requires a UoWFactory because the sequence number and the note must be
// reserved and stored atomically.
func NewCreateDeliveryNoteCommandHandler(uowFactory UoWFactory) CreateDeliveryNoteCommandHandler {
	return CreateDeliveryNoteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the note creation command.
// Reserves the next document number for the current year, creates the draft,
// and persists it. Uses a transaction so a failed save does not burn a number.
func (h *CreateDeliveryNoteCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryNoteCommand) error {
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

	number, err := uow.NumberGenerator().NextNumber(ctx, time.Now())
	if err != nil {
		return err
	}

	note, err := deliverynote.NewDeliveryNote(cmd.NoteID(), number, cmd.CustomerID(), cmd.CustomerName())
	if err != nil {
		return err
	}

	if err = uow.DeliveryNoteRepository().Add(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
