// Package kernel contains the shared value objects of the domain model:
// UUID identifiers, monetary amounts, color classifications, and piece
// measurements.
//
// All types in this package are immutable value objects created through
// validating constructors. Zero values are invalid and fail Validate(),
// enforced via the constructor-guard pattern. The value objects carry no
// behavior beyond their own invariants; pricing rules and document lifecycle
// live in the pricing and deliverynote packages that consume them.
package kernel
