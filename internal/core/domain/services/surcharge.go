package services

import (
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// Surcharge is a post-resolution adjustment applied to a line item's base
// price. The pricing profile resolves the base price (override, formula,
// floor) and deliberately knows nothing about treatments; surcharges are
// optional strategies composed by the caller, so a deployment can turn the
// historic primer and high-thickness rules on or off without touching the
// resolution algorithm.
type Surcharge interface {
	// Name identifies the surcharge in configuration and logs.
	Name() string

	// Apply returns the adjusted price. Implementations must never lower
	// the price below the base.
	Apply(base kernel.Money, measurements kernel.Measurements) (kernel.Money, error)
}

// ApplySurcharges runs the given surcharges over a base price in order.
// With no surcharges the base price is returned unchanged.
func ApplySurcharges(
	base kernel.Money,
	measurements kernel.Measurements,
	surcharges []Surcharge,
) (kernel.Money, error) {
	price := base
	for _, s := range surcharges {
		adjusted, err := s.Apply(price, measurements)
		if err != nil {
			return kernel.Money{}, fmt.Errorf("surcharge %s: %w", s.Name(), err)
		}
		price = adjusted
	}
	return price, nil
}

// PrimerSurcharge doubles the base price for pieces that receive a primer
// coat before the color coat.
type PrimerSurcharge struct {
	factor float64
}

// NewPrimerSurcharge creates the primer surcharge with its standard factor of 2.
func NewPrimerSurcharge() PrimerSurcharge {
	return PrimerSurcharge{factor: 2.0}
}

// Name implements Surcharge.
func (s PrimerSurcharge) Name() string {
	return "primer"
}

// Apply implements Surcharge by doubling the base price.
// Measurements are not consulted.
func (s PrimerSurcharge) Apply(base kernel.Money, _ kernel.Measurements) (kernel.Money, error) {
	return base.MultiplyByFactor(s.factor)
}

// ThicknessSurcharge raises the price by 70% when the coating thickness
// exceeds a threshold. Pieces without a recorded thickness are unaffected.
type ThicknessSurcharge struct {
	threshold float64
	factor    float64
}

// NewThicknessSurcharge creates the high-thickness surcharge.
// The threshold must be positive; coatings strictly thicker than it pay
// the 1.7x factor.
func NewThicknessSurcharge(threshold float64) (ThicknessSurcharge, error) {
	if threshold <= 0 {
		return ThicknessSurcharge{}, errs.NewValueIsInvalidErrorWithCause("threshold",
			fmt.Errorf("%v is not greater than 0", threshold))
	}

	return ThicknessSurcharge{threshold: threshold, factor: 1.7}, nil
}

// Name implements Surcharge.
func (s ThicknessSurcharge) Name() string {
	return "thickness"
}

// Apply implements Surcharge, scaling the price by 1.7 when the recorded
// thickness exceeds the threshold.
func (s ThicknessSurcharge) Apply(
	base kernel.Money,
	measurements kernel.Measurements,
) (kernel.Money, error) {
	thickness, ok := measurements.Thickness()
	if !ok || thickness <= s.threshold {
		return base, nil
	}

	return base.MultiplyByFactor(s.factor)
}
