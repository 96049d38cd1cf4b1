package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var (
	// ErrColorIsNotConstructed is returned when a Color value was not created
	// through NewStandardColor, NewSpecialColor, or ClassifyColor.
	ErrColorIsNotConstructed = errs.NewValueIsRequiredError(
		"Color must be created via NewStandardColor, NewSpecialColor, or ClassifyColor")

	// ErrInvalidColorCode is returned when a standardized color code does not
	// reduce to four digits.
	ErrInvalidColorCode = errs.NewDomainError(errs.CodeInvalidColorCode,
		"standardized color code must be a 4-digit number")

	// ErrColorTextIsRequired is returned when a special color name is empty.
	ErrColorTextIsRequired = errs.NewDomainError(errs.CodeInvalidName,
		"special color name must not be empty")
)

// standardColorCodePattern matches a 4-digit color code, optionally prefixed by a
// scheme label and whitespace, e.g. "9010" or "RAL 9010".
var standardColorCodePattern = regexp.MustCompile(`^(?:[A-Za-z]+\s+)?(\d{4})$`)

// colorVariant distinguishes the two kinds of color classification.
type colorVariant int

const (
	standardColor colorVariant = iota + 1
	specialColor
)

// Color classifies the coating color of a piece: either a standardized 4-digit
// code (normalized, scheme label stripped) or a free-text "special" color name
// used when no standardized code applies.
//
// Color is an immutable value object. Exactly one variant is active; equality
// compares variant and normalized value. The zero value is invalid.
//
// Example:
//
//	c, err := kernel.NewStandardColor("RAL 9010")
//	// c.IsStandard() == true, c.Code() == "9010"
//
//	c = kernel.ClassifyColor("hammered copper")
//	// c.IsSpecial() == true, c.Code() == "hammered copper"
type Color struct {
	variant colorVariant
	value   string
	guard   guard.ConstructorGuard
}

// NewStandardColor creates a standardized color from a 4-digit code.
// The code may carry a scheme label prefix ("RAL 9010") and surrounding
// whitespace; it is normalized to the bare digits. Returns ErrInvalidColorCode
// if the input does not match the 4-digit pattern.
func NewStandardColor(code string) (Color, error) {
	matches := standardColorCodePattern.FindStringSubmatch(strings.TrimSpace(code))
	if matches == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorCode, code)
	}

	return Color{
		variant: standardColor,
		value:   matches[1],
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewSpecialColor creates a free-text color from a non-empty name.
// The name is trimmed before storage.
func NewSpecialColor(text string) (Color, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Color{}, ErrColorTextIsRequired
	}

	return Color{
		variant: specialColor,
		value:   trimmed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ClassifyColor builds a Color from arbitrary input: a standardized color when
// the input matches the 4-digit pattern, a special color otherwise.
// Returns an error only for empty input.
func ClassifyColor(text string) (Color, error) {
	if c, err := NewStandardColor(text); err == nil {
		return c, nil
	}
	return NewSpecialColor(text)
}

// Validate checks that the Color was created through a constructor.
func (c Color) Validate() error {
	return c.guard.Validate(ErrColorIsNotConstructed)
}

// IsStandard reports whether the color is a standardized 4-digit code.
func (c Color) IsStandard() bool {
	return c.variant == standardColor
}

// IsSpecial reports whether the color is a free-text special color.
func (c Color) IsSpecial() bool {
	return c.variant == specialColor
}

// Code returns the stored value regardless of variant: the normalized 4-digit
// code for standardized colors, the trimmed free text for special colors.
func (c Color) Code() string {
	return c.value
}

// IsEqual compares colors by variant and normalized value.
// Both colors must be properly constructed.
func (c Color) IsEqual(other Color) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return c.variant == other.variant && c.value == other.value, nil
}

// String returns a human-readable representation for logging.
func (c Color) String() string {
	if c.IsStandard() {
		return fmt.Sprintf("StandardColor(%s)", c.value)
	}
	return fmt.Sprintf("SpecialColor(%s)", c.value)
}
