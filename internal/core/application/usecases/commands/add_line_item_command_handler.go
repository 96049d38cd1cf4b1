package commands

import (
	"context"

	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/services"
)

// AddLineItemCommandHandler handles adding a priced piece to a draft note.
//
// The handler owns the full pricing flow: it classifies the color text,
// builds the measurements, resolves the base price through the customer's
// pricing profile, applies the configured surcharge strategies, and only
// then hands the priced item to the aggregate. The note itself never calls
// the pricing resolver.
type AddLineItemCommandHandler struct {
	uowFactory UoWFactory
	surcharges []services.Surcharge
}

// NewAddLineItemCommandHandler creates a handler for adding line items.
// The surcharge list may be empty; strategies are applied in order after
// base price resolution.
func NewAddLineItemCommandHandler(
	uowFactory UoWFactory,
	surcharges []services.Surcharge,
) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
		surcharges: surcharges,
	}
}

// Handle processes the add-item command.
// Loads the note and the customer's pricing profile in one transaction,
// prices the piece, and persists the grown note. Fails without side effects
// if the note is not editable.
func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	color, err := kernel.ClassifyColor(cmd.ColorText())
	if err != nil {
		return err
	}

	measurements, err := buildMeasurements(cmd.Length(), cmd.Area(), cmd.Thickness())
	if err != nil {
		return err
	}

	item, err := deliverynote.NewLineItem(cmd.ItemID(), cmd.Name(), color, cmd.Quantity(), measurements)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	profile, err := uow.PricingProfileRepository().GetByCustomer(ctx, note.CustomerID())
	if err != nil {
		return err
	}

	basePrice, err := profile.ResolvePrice(measurements, item.Name())
	if err != nil {
		return err
	}

	price, err := services.ApplySurcharges(basePrice, measurements, h.surcharges)
	if err != nil {
		return err
	}

	if err = item.AssignPrice(price); err != nil {
		return err
	}

	if err = note.AddItem(item); err != nil {
		return err
	}

	if err = noteRepo.Update(ctx, note); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// buildMeasurements converts the command's optional dimensions into the
// measurements value object. Zero values mean "not provided".
func buildMeasurements(length, area, thickness float64) (kernel.Measurements, error) {
	var (
		measurements kernel.Measurements
		err          error
	)

	switch {
	case length > 0:
		measurements, err = kernel.NewLinearMeasurements(length)
	case area > 0:
		measurements, err = kernel.NewAreaMeasurements(area)
	default:
		measurements = kernel.NewEmptyMeasurements()
	}
	if err != nil {
		return kernel.Measurements{}, err
	}

	if thickness > 0 {
		measurements, err = measurements.WithThickness(thickness)
		if err != nil {
			return kernel.Measurements{}, err
		}
	}

	return measurements, nil
}
