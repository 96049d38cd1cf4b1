package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrUpdatePricingRatesCommandIsNotConstructed = errors.New(
	"UpdatePricingRatesCommand must be created via NewUpdatePricingRatesCommand constructor",
)

// UpdatePricingRatesCommand represents a request to change a profile's rates
// and minimum charge. Already-priced line items keep their prices.
type UpdatePricingRatesCommand struct { //nolint:recvcheck //using for validation
	profileID     kernel.UUID
	linearRate    kernel.Money
	areaRate      kernel.Money
	minimumCharge kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdatePricingRatesCommand creates a command to update pricing rates.
func NewUpdatePricingRatesCommand(
	profileID kernel.UUID,
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
) (UpdatePricingRatesCommand, error) {
	cmd := UpdatePricingRatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setParams(profileID, linearRate, areaRate, minimumCharge); err != nil {
		return UpdatePricingRatesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePricingRatesCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePricingRatesCommandIsNotConstructed)
}

// ProfileID returns the target profile identifier.
func (c UpdatePricingRatesCommand) ProfileID() kernel.UUID {
	return c.profileID
}

// LinearRate returns the new price per meter.
func (c UpdatePricingRatesCommand) LinearRate() kernel.Money {
	return c.linearRate
}

// AreaRate returns the new price per square meter.
func (c UpdatePricingRatesCommand) AreaRate() kernel.Money {
	return c.areaRate
}

// MinimumCharge returns the new price floor.
func (c UpdatePricingRatesCommand) MinimumCharge() kernel.Money {
	return c.minimumCharge
}

func (c *UpdatePricingRatesCommand) setParams(
	profileID kernel.UUID,
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
) error {
	if err := errors.Join(
		profileID.Validate(),
		linearRate.Validate(),
		areaRate.Validate(),
		minimumCharge.Validate(),
	); err != nil {
		return err
	}

	c.profileID = profileID
	c.linearRate = linearRate
	c.areaRate = areaRate
	c.minimumCharge = minimumCharge
	return nil
}
