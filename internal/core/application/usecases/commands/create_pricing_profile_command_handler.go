package commands

import (
	"context"

	"workshop/internal/core/domain/model/pricing"
)

// CreatePricingProfileCommandHandler opens a pricing profile for a customer.
type CreatePricingProfileCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewCreatePricingProfileCommandHandler creates a handler for profile creation.
func NewCreatePricingProfileCommandHandler(uowFactory PricingUoWFactory) CreatePricingProfileCommandHandler {
	return CreatePricingProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile creation command.
func (h *CreatePricingProfileCommandHandler) Handle(ctx context.Context, cmd CreatePricingProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profile, err := pricing.NewPricingProfile(
		cmd.ProfileID(),
		cmd.CustomerID(),
		cmd.LinearRate(),
		cmd.AreaRate(),
		cmd.MinimumCharge(),
		cmd.SpecialPrices(),
	)
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

	if err = uow.PricingProfileRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
