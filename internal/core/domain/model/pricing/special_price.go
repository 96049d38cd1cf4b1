package pricing

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrSpecialPriceIsNotConstructed indicates that the SpecialPrice was not
// created through the NewSpecialPrice constructor.
var ErrSpecialPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"SpecialPrice must be created via NewSpecialPrice")

// SpecialPrice is a fixed-price override keyed by piece name. When a line
// item's name matches (case-insensitively, exact match) the override's name,
// the fixed price is charged and measurements are ignored entirely.
//
// SpecialPrice is an immutable value object.
type SpecialPrice struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewSpecialPrice creates a named fixed-price override.
// The name must be non-empty after trimming; the price must be a properly
// constructed (hence non-negative) Money value.
func NewSpecialPrice(name string, price kernel.Money) (SpecialPrice, error) {
	sp := SpecialPrice{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(sp.setName(name), sp.setPrice(price)); err != nil {
		return SpecialPrice{}, err
	}

	return sp, nil
}

// Validate checks that the SpecialPrice was created through its constructor.
func (sp SpecialPrice) Validate() error {
	return sp.guard.Validate(ErrSpecialPriceIsNotConstructed)
}

// Name returns the piece name the override matches against.
func (sp SpecialPrice) Name() string {
	return sp.name
}

// Price returns the fixed price charged on a match.
func (sp SpecialPrice) Price() kernel.Money {
	return sp.price
}

// Matches reports whether the override applies to the given item name.
// Matching is case-insensitive and exact after trimming.
func (sp SpecialPrice) Matches(itemName string) bool {
	return strings.EqualFold(sp.name, strings.TrimSpace(itemName))
}

// setName validates, trims, and sets the override name.
// Pointer receiver for self-encapsulated construction validation.
func (sp *SpecialPrice) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("special price name")
	}
	sp.name = trimmed
	return nil
}

// setPrice validates and sets the fixed price.
func (sp *SpecialPrice) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	sp.price = price
	return nil
}
