// Package pricing contains the PricingProfile aggregate: the per-customer
// pricing rules (linear rate, area rate, minimum charge, and special-piece
// overrides) and the price-resolution algorithm applied when line items are
// built.
//
// Profiles are created at customer onboarding and updated whenever rates
// change. The delivery-note aggregate never calls into this package; use
// cases resolve prices here before items enter a note.
package pricing
