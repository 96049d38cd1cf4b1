package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"
	"workshop/internal/pkg/guard"
)

var ErrReplaceSpecialPricesCommandIsNotConstructed = errors.New(
	"ReplaceSpecialPricesCommand must be created via NewReplaceSpecialPricesCommand constructor",
)

// ReplaceSpecialPricesCommand represents a request to replace a profile's
// fixed-price override list wholesale.
type ReplaceSpecialPricesCommand struct { //nolint:recvcheck //using for validation
	profileID     kernel.UUID
	specialPrices []pricing.SpecialPrice

	guard guard.ConstructorGuard
}

// NewReplaceSpecialPricesCommand creates a command to replace special prices.
// An empty list removes all overrides.
func NewReplaceSpecialPricesCommand(
	profileID kernel.UUID,
	specialPrices []pricing.SpecialPrice,
) (ReplaceSpecialPricesCommand, error) {
	cmd := ReplaceSpecialPricesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProfileID(profileID),
		cmd.setSpecialPrices(specialPrices),
	); err != nil {
		return ReplaceSpecialPricesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceSpecialPricesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceSpecialPricesCommandIsNotConstructed)
}

// ProfileID returns the target profile identifier.
func (c ReplaceSpecialPricesCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// SpecialPrices returns the replacement override list.
func (c ReplaceSpecialPricesCommand) SpecialPrices() []pricing.SpecialPrice {
	prices := make([]pricing.SpecialPrice, len(c.specialPrices))
	copy(prices, c.specialPrices)
	return prices
}

func (c *ReplaceSpecialPricesCommand) setProfileID(profileID kernel.UUID) error {
	if err := profileID.Validate(); err != nil {
		return err
	}

	c.profileID = profileID
	return nil
}

func (c *ReplaceSpecialPricesCommand) setSpecialPrices(specialPrices []pricing.SpecialPrice) error {
	for _, sp := range specialPrices {
		if err := sp.Validate(); err != nil {
			return err
		}
	}

	c.specialPrices = make([]pricing.SpecialPrice, len(specialPrices))
	copy(c.specialPrices, specialPrices)
	return nil
}
