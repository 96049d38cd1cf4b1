package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"
	"workshop/internal/pkg/guard"
)

var ErrCreatePricingProfileCommandIsNotConstructed = errors.New(
	"CreatePricingProfileCommand must be created via NewCreatePricingProfileCommand constructor",
)

// CreatePricingProfileCommand represents a request to open a pricing profile
// for a customer: the per-meter and per-square-meter rates, the minimum
// charge, and any fixed-price overrides.
type CreatePricingProfileCommand struct { //nolint:recvcheck //using for validation
	profileID     kernel.UUID
	customerID    kernel.UUID
	linearRate    kernel.Money
	areaRate      kernel.Money
	minimumCharge kernel.Money
	specialPrices []pricing.SpecialPrice

	guard guard.ConstructorGuard
}

// NewCreatePricingProfileCommand creates a command to open a pricing profile.
// The special-price list may be empty.
func NewCreatePricingProfileCommand(
	profileID kernel.UUID,
	customerID kernel.UUID,
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
	specialPrices []pricing.SpecialPrice,
) (CreatePricingProfileCommand, error) {
	cmd := CreatePricingProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(profileID, customerID),
		cmd.setRates(linearRate, areaRate, minimumCharge),
		cmd.setSpecialPrices(specialPrices),
	); err != nil {
		return CreatePricingProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePricingProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingProfileCommandIsNotConstructed)
}

// ProfileID returns the identifier for the new profile.
func (c CreatePricingProfileCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// CustomerID returns the owning customer identifier.
func (c CreatePricingProfileCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LinearRate returns the price per meter.
func (c CreatePricingProfileCommand) LinearRate() kernel.Money {
	return c.linearRate
}

// AreaRate returns the price per square meter.
func (c CreatePricingProfileCommand) AreaRate() kernel.Money {
	return c.areaRate
}

// MinimumCharge returns the floor applied to computed prices.
func (c CreatePricingProfileCommand) MinimumCharge() kernel.Money {
	return c.minimumCharge
}

// SpecialPrices returns the fixed-price overrides.
func (c CreatePricingProfileCommand) SpecialPrices() []pricing.SpecialPrice {
	prices := make([]pricing.SpecialPrice, len(c.specialPrices))
	copy(prices, c.specialPrices)
	return prices
}

func (c *CreatePricingProfileCommand) setIDs(profileID kernel.UUID, customerID kernel.UUID) error {
	if err := errors.Join(profileID.Validate(), customerID.Validate()); err != nil {
		return err
	}

	c.profileID = profileID
	c.customerID = customerID
	return nil
}

func (c *CreatePricingProfileCommand) setRates(linearRate, areaRate, minimumCharge kernel.Money) error {
	if err := errors.Join(linearRate.Validate(), areaRate.Validate(), minimumCharge.Validate()); err != nil {
		return err
	}

	c.linearRate = linearRate
	c.areaRate = areaRate
	c.minimumCharge = minimumCharge
	return nil
}

func (c *CreatePricingProfileCommand) setSpecialPrices(specialPrices []pricing.SpecialPrice) error {
	for _, sp := range specialPrices {
		if err := sp.Validate(); err != nil {
			return err
		}
	}

	c.specialPrices = make([]pricing.SpecialPrice, len(specialPrices))
	copy(c.specialPrices, specialPrices)
	return nil
}
