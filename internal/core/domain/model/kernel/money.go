package kernel

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	// ErrMoneyIsNotConstructed is returned when a Money value was not created
	// through one of the constructor functions.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"Money must be created via NewMoney or ZeroMoney")

	// ErrNegativeAmount is returned when a monetary amount is negative.
	ErrNegativeAmount = errs.NewDomainError(errs.CodeNegativePrice, "amount must not be negative")
)

// Money is an immutable, non-negative monetary amount in the workshop's single
// billing currency. Only additive and multiplicative operations are exposed, so
// arithmetic on valid Money values never produces a negative result.
//
// Amounts are plain float64, matching how the workshop's rates and prices are
// entered. Deployments with strict rounding requirements should swap the
// representation for a decimal type behind this same interface.
//
// The zero value of Money is invalid; use NewMoney or ZeroMoney.
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a non-negative amount.
// Returns ErrNegativeAmount if the amount is negative.
func NewMoney(amount float64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney returns a valid Money value of zero.
// Used as the starting point for total accumulation.
func ZeroMoney() Money {
	m, _ := NewMoney(0)
	return m
}

// Validate checks that the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the numeric amount.
func (m Money) Amount() float64 {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsLessThan reports whether this amount is strictly smaller than the other.
// Both values must be properly constructed.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount < other.amount, nil
}

// IsEqual compares two monetary amounts for equality.
// Both values must be properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount == other.amount, nil
}

// Add returns the sum of two monetary amounts.
// Both values must be properly constructed; the result is always non-negative.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount)
}

// MultiplyBy returns the amount multiplied by a positive integer quantity.
// Used to extend a unit price over a line item's quantity.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return NewMoney(m.amount * float64(quantity))
}

// MultiplyByFactor returns the amount scaled by a non-negative factor.
// Used by surcharge strategies (for example a primer treatment doubling the price).
func (m Money) MultiplyByFactor(factor float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%v is negative", factor))
	}

	return NewMoney(m.amount * factor)
}

// String returns a human-readable representation, e.g. "Money(50.00)".
func (m Money) String() string {
	return fmt.Sprintf("Money(%.2f)", m.amount)
}

// setAmount sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during construction.
func (m *Money) setAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeAmount, amount)
	}

	m.amount = amount
	return nil
}
