package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"
)

// PricingProfileRepository defines the persistence contract for pricing-profile
// aggregates. Profiles are looked up by customer: each customer owns exactly
// one profile, created at onboarding.
type PricingProfileRepository interface {
	// Add persists a new pricing profile.
	Add(ctx context.Context, aggregate *pricing.PricingProfile) error

	// Update persists changes to an existing pricing profile,
	// replacing its special-price overrides wholesale.
	Update(ctx context.Context, aggregate *pricing.PricingProfile) error

	// Get retrieves a pricing profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pricing.PricingProfile, error)

	// GetByCustomer retrieves the pricing profile owned by the given customer.
	// Returns an ObjectNotFoundError when the customer has no profile yet;
	// the caller decides how to surface that.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*pricing.PricingProfile, error)
}
