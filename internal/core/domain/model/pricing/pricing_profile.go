package pricing

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

// ErrPricingProfileIsNotConstructed is returned when a PricingProfile instance
// was not created through the NewPricingProfile factory method.
var ErrPricingProfileIsNotConstructed = errors.New(
	"PricingProfile must be created via NewPricingProfile constructor")

// PricingProfile is the aggregate root owning a customer's pricing rules:
// a per-linear-unit rate, a per-area rate, a minimum charge, and an ordered
// list of named fixed-price overrides for special pieces.
//
// The profile exposes the price-resolution algorithm used when line items are
// built. Resolution order:
//
//  1. Special-piece lookup by name (case-insensitive, exact); on a match the
//     fixed price wins and measurements are irrelevant.
//  2. Formula: linear length times the linear rate plus area times the area
//     rate, absent dimensions contributing zero.
//  3. Floor: a computed price below the minimum charge is raised to it, which
//     also makes the minimum the de-facto price for unmeasured pieces.
//
// No surcharge or multiplier logic lives here; treatment surcharges are
// applied by callers after base resolution (see the services package).
//
// Invariants:
//   - All three rate fields are valid non-negative Money values at all times
//   - Mutation methods re-validate on every change
type PricingProfile struct {
	// id is the unique identifier of the profile
	id kernel.UUID

	// customerID references the customer these rules belong to
	customerID kernel.UUID

	// linearRate is the price per linear unit
	linearRate kernel.Money

	// areaRate is the price per area unit
	areaRate kernel.Money

	// minimumCharge is the lowest price ever charged for a priced piece
	minimumCharge kernel.Money

	// specialPrices is the ordered list of fixed-price overrides
	specialPrices []SpecialPrice

	// guard ensures the aggregate was created via a constructor
	guard guard.ConstructorGuard
}

// NewPricingProfile creates a pricing profile for a customer.
//
// Parameters:
//   - id: Unique profile identifier (must be a valid UUID)
//   - customerID: Owning customer reference (must be a valid UUID)
//   - linearRate, areaRate, minimumCharge: Non-negative Money values
//   - specialPrices: Fixed-price overrides, may be empty
//
// Returns the profile, or an aggregated validation error.
func NewPricingProfile(
	id kernel.UUID,
	customerID kernel.UUID,
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
	specialPrices []SpecialPrice,
) (*PricingProfile, error) {
	profile := &PricingProfile{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setCustomerID(customerID),
		profile.setRates(linearRate, areaRate, minimumCharge),
		profile.setSpecialPrices(specialPrices),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// RestorePricingProfile reconstructs a pricing profile from persistent storage.
// It applies the same validation as NewPricingProfile.
func RestorePricingProfile(
	id kernel.UUID,
	customerID kernel.UUID,
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
	specialPrices []SpecialPrice,
) (*PricingProfile, error) {
	return NewPricingProfile(id, customerID, linearRate, areaRate, minimumCharge, specialPrices)
}

// Validate ensures the PricingProfile instance was properly constructed.
func (p *PricingProfile) Validate() error {
	if p == nil {
		return ErrPricingProfileIsNotConstructed
	}
	return p.guard.Validate(ErrPricingProfileIsNotConstructed)
}

// IsEqual compares two profiles by their unique identifiers.
func (p *PricingProfile) IsEqual(other *PricingProfile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (p *PricingProfile) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the owning customer reference.
func (p *PricingProfile) CustomerID() kernel.UUID {
	return p.customerID
}

// LinearRate returns the price per linear unit.
func (p *PricingProfile) LinearRate() kernel.Money {
	return p.linearRate
}

// AreaRate returns the price per area unit.
func (p *PricingProfile) AreaRate() kernel.Money {
	return p.areaRate
}

// MinimumCharge returns the floor price.
func (p *PricingProfile) MinimumCharge() kernel.Money {
	return p.minimumCharge
}

// SpecialPrices returns a copy of the ordered override list.
func (p *PricingProfile) SpecialPrices() []SpecialPrice {
	overrides := make([]SpecialPrice, len(p.specialPrices))
	copy(overrides, p.specialPrices)
	return overrides
}

// ResolvePrice resolves the base unit price for a piece.
//
// The item name is checked against the special-price overrides first; on a
// match the fixed price is returned and measurements are ignored. Otherwise
// the measurement formula runs, floored at the minimum charge. A piece with
// no measurements computes to zero and therefore resolves to the minimum.
//
// Example: linear rate 15.50, length 2 computes 31.00; with a minimum charge
// of 50.00 the resolved price is 50.00.
func (p *PricingProfile) ResolvePrice(
	measurements kernel.Measurements,
	itemName string,
) (kernel.Money, error) {
	if err := errors.Join(p.Validate(), measurements.Validate()); err != nil {
		return kernel.Money{}, err
	}

	for _, override := range p.specialPrices {
		if override.Matches(itemName) {
			return override.Price(), nil
		}
	}

	computed := 0.0
	if length, ok := measurements.Length(); ok {
		computed += length * p.linearRate.Amount()
	}
	if area, ok := measurements.Area(); ok {
		computed += area * p.areaRate.Amount()
	}

	if computed < p.minimumCharge.Amount() {
		return p.minimumCharge, nil
	}

	return kernel.NewMoney(computed)
}

// UpdateRates replaces the three pricing parameters, re-validating each.
// Negative inputs never reach this method: they fail at Money construction
// with a NEGATIVE_PRICE error.
func (p *PricingProfile) UpdateRates(
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
) error {
	return p.setRates(linearRate, areaRate, minimumCharge)
}

// ReplaceOverrides replaces the special-price override list, re-validating
// every entry.
func (p *PricingProfile) ReplaceOverrides(specialPrices []SpecialPrice) error {
	return p.setSpecialPrices(specialPrices)
}

// setID validates and sets the profile identifier.
// This is a private method used only during construction.
func (p *PricingProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("profile id: %w", err)
	}
	p.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (p *PricingProfile) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customer id: %w", err)
	}
	p.customerID = customerID
	return nil
}

// setRates validates and sets all three pricing parameters atomically.
func (p *PricingProfile) setRates(
	linearRate kernel.Money,
	areaRate kernel.Money,
	minimumCharge kernel.Money,
) error {
	if err := errors.Join(
		linearRate.Validate(),
		areaRate.Validate(),
		minimumCharge.Validate(),
	); err != nil {
		return err
	}

	p.linearRate = linearRate
	p.areaRate = areaRate
	p.minimumCharge = minimumCharge
	return nil
}

// setSpecialPrices validates and sets the override list.
func (p *PricingProfile) setSpecialPrices(specialPrices []SpecialPrice) error {
	overrides := make([]SpecialPrice, 0, len(specialPrices))
	for _, sp := range specialPrices {
		if err := sp.Validate(); err != nil {
			return err
		}
		overrides = append(overrides, sp)
	}
	p.specialPrices = overrides
	return nil
}
