package commands

import (
	"context"
)

// UpdatePricingRatesCommandHandler changes a profile's rates and floor.
// Only future price resolutions see the new values; items already priced
// keep their prices.
type UpdatePricingRatesCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewUpdatePricingRatesCommandHandler creates a handler for rate updates.
func NewUpdatePricingRatesCommandHandler(uowFactory PricingUoWFactory) UpdatePricingRatesCommandHandler {
	return UpdatePricingRatesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rate update command.
func (h *UpdatePricingRatesCommandHandler) Handle(ctx context.Context, cmd UpdatePricingRatesCommand) error {
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

	profileRepo := uow.PricingProfileRepository()
	profile, err := profileRepo.Get(ctx, cmd.ProfileID())
	if err != nil {
		return err
	}

	if err = profile.UpdateRates(cmd.LinearRate(), cmd.AreaRate(), cmd.MinimumCharge()); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
