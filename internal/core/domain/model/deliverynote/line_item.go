package deliverynote

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed indicates that the LineItem was not properly
// initialized through the NewLineItem or RestoreLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one priced unit of work within a delivery note, typically a
// coated piece. It is an entity owned exclusively by one DeliveryNote and has
// no independent persistence or lifecycle.
//
// A line item carries a resolved unit price only after the pricing profile has
// been consulted; until then HasPrice reports false and the owning note cannot
// be validated. Editability is enforced by the owning aggregate, not by the
// item itself: all mutation must flow through DeliveryNote methods.
//
// Key business rules:
//   - Identifier must be valid, name non-empty after trimming
//   - Quantity must be greater than zero
//   - Equality is identity-based (by id only)
type LineItem struct {
	// id uniquely identifies the line item within its note
	id kernel.UUID

	// name describes the piece, trimmed, never empty
	name string

	// color classifies the coating color (standardized code or special text)
	color kernel.Color

	// quantity is the number of identical pieces (always > 0)
	quantity int

	// measurements holds the optional dimensions used for pricing
	measurements kernel.Measurements

	// price is the resolved unit price, nil until pricing has run
	price *kernel.Money

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewLineItem creates an unpriced line item with validation.
//
// Parameters:
//   - id: Unique identifier (must be a valid UUID)
//   - name: Piece description (must be non-empty after trimming; stored trimmed)
//   - color: Coating color (already-validated value object)
//   - quantity: Number of pieces (must be greater than 0)
//   - measurements: Piece dimensions (already-validated value object)
//
// Returns the item, or an aggregated validation error if any parameter is invalid.
func NewLineItem(
	id kernel.UUID,
	name string,
	color kernel.Color,
	quantity int,
	measurements kernel.Measurements,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setColor(color),
		item.setQuantity(quantity),
		item.setMeasurements(measurements),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a line item from persistent storage, including
// its resolved price when one was persisted. The restored item behaves
// identically to one created through normal domain operations.
func RestoreLineItem(
	id kernel.UUID,
	name string,
	color kernel.Color,
	quantity int,
	measurements kernel.Measurements,
	price *kernel.Money,
) (*LineItem, error) {
	item, err := NewLineItem(id, name, color, quantity, measurements)
	if err != nil {
		return nil, err
	}

	if price != nil {
		if err = item.AssignPrice(*price); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// Validate ensures the LineItem instance was properly constructed.
func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// IsEqual compares two line items by their unique identifiers.
// Items are considered equal if they have the same ID, regardless of any
// other mutable field.
func (i *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (i *LineItem) ID() kernel.UUID {
	return i.id
}

// Name returns the trimmed piece description.
func (i *LineItem) Name() string {
	return i.name
}

// Color returns the coating color classification.
func (i *LineItem) Color() kernel.Color {
	return i.color
}

// Quantity returns the number of identical pieces.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// Measurements returns the piece dimensions.
func (i *LineItem) Measurements() kernel.Measurements {
	return i.measurements
}

// Price returns the resolved unit price and whether one is attached.
func (i *LineItem) Price() (kernel.Money, bool) {
	if i.price == nil {
		return kernel.Money{}, false
	}
	return *i.price, true
}

// HasPrice reports whether a resolved unit price is attached.
func (i *LineItem) HasPrice() bool {
	return i.price != nil
}

// AssignPrice attaches a resolved unit price to the item.
// The caller resolves the price through the customer's pricing profile; this
// method only stores the result. Returns an error if the money value is not
// properly constructed.
func (i *LineItem) AssignPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = &price
	return nil
}

// RemovePrice clears the resolved unit price, returning the item to the
// unpriced state. Has no other side effects.
func (i *LineItem) RemovePrice() {
	i.price = nil
}

// TotalPrice returns the extended total (unit price times quantity) and true,
// or a zero value and false when no price is attached. It never fails:
// quantity is always positive and an attached price is always valid.
func (i *LineItem) TotalPrice() (kernel.Money, bool) {
	if i.price == nil {
		return kernel.Money{}, false
	}

	total, err := i.price.MultiplyBy(i.quantity)
	if err != nil {
		// Unreachable for a constructed item; surfacing a zero total would
		// corrupt document totals, so fail loudly.
		panic(fmt.Sprintf("line item %s: %v", i.id, err))
	}

	return total, true
}

// Rename changes the piece description, re-running constructor validation.
func (i *LineItem) Rename(name string) error {
	return i.setName(name)
}

// ChangeColor replaces the coating color classification.
func (i *LineItem) ChangeColor(color kernel.Color) error {
	return i.setColor(color)
}

// ChangeQuantity changes the number of pieces, re-running constructor validation.
// The attached price, if any, is kept; totals follow the new quantity.
func (i *LineItem) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// ChangeMeasurements replaces the piece dimensions.
// The attached price is not recomputed; callers re-resolve pricing when
// dimensions change.
func (i *LineItem) ChangeMeasurements(measurements kernel.Measurements) error {
	return i.setMeasurements(measurements)
}

// setID validates and sets the item identifier.
// This is a private method used only during construction.
func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	i.id = id
	return nil
}

// setName validates, trims, and sets the piece description.
func (i *LineItem) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrInvalidName
	}
	i.name = trimmed
	return nil
}

// setColor validates and sets the color classification.
func (i *LineItem) setColor(color kernel.Color) error {
	if err := color.Validate(); err != nil {
		return err
	}
	i.color = color
	return nil
}

// setQuantity validates and sets the quantity.
func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	i.quantity = quantity
	return nil
}

// setMeasurements validates and sets the piece dimensions.
func (i *LineItem) setMeasurements(measurements kernel.Measurements) error {
	if err := measurements.Validate(); err != nil {
		return err
	}
	i.measurements = measurements
	return nil
}
