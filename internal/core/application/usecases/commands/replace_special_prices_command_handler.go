package commands

import (
	"context"
)

// ReplaceSpecialPricesCommandHandler swaps a profile's override list.
type ReplaceSpecialPricesCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewReplaceSpecialPricesCommandHandler creates a handler for override replacement.
func NewReplaceSpecialPricesCommandHandler(uowFactory PricingUoWFactory) ReplaceSpecialPricesCommandHandler {
	return ReplaceSpecialPricesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override replacement command.
func (h *ReplaceSpecialPricesCommandHandler) Handle(ctx context.Context, cmd ReplaceSpecialPricesCommand) error {
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

	if err = profile.ReplaceOverrides(cmd.SpecialPrices()); err != nil {
		return err
	}

	if err = profileRepo.Update(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
