package kernel

import (
	"fmt"
	"strings"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrMeasurementsAreNotConstructed is returned when a Measurements value was not
// created through one of the constructor functions.
var ErrMeasurementsAreNotConstructed = errs.NewValueIsRequiredError(
	"Measurements must be created via NewLinearMeasurements, NewAreaMeasurements, or NewEmptyMeasurements")

// Measurements holds the optional dimensions of a coated piece: a linear length,
// an area, and a coating thickness. Present values are always positive.
//
// The absence of both length and area is itself a meaningful state: the pricing
// profile charges its minimum for unmeasured items. Thickness is independent of
// the length/area choice and only feeds surcharge strategies.
//
// Measurements is an immutable value object; the zero value is invalid.
type Measurements struct { //nolint:recvcheck //using for validation
	length    float64
	area      float64
	thickness float64

	hasLength    bool
	hasArea      bool
	hasThickness bool

	guard guard.ConstructorGuard
}

// NewLinearMeasurements creates measurements carrying a linear length.
// The length must be greater than zero.
func NewLinearMeasurements(length float64) (Measurements, error) {
	m := Measurements{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setLength(length); err != nil {
		return Measurements{}, err
	}

	return m, nil
}

// NewAreaMeasurements creates measurements carrying an area.
// The area must be greater than zero.
func NewAreaMeasurements(area float64) (Measurements, error) {
	m := Measurements{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setArea(area); err != nil {
		return Measurements{}, err
	}

	return m, nil
}

// NewEmptyMeasurements creates measurements with neither length nor area.
// Items carrying empty measurements are priced at the profile's minimum charge.
func NewEmptyMeasurements() Measurements {
	return Measurements{
		guard: guard.NewConstructorGuard(),
	}
}

// WithThickness returns a copy of the measurements with the coating thickness set.
// The thickness must be greater than zero.
func (m Measurements) WithThickness(thickness float64) (Measurements, error) {
	if err := m.Validate(); err != nil {
		return Measurements{}, err
	}

	result := m
	if err := result.setThickness(thickness); err != nil {
		return Measurements{}, err
	}

	return result, nil
}

// Validate checks that the Measurements value was created through a constructor.
func (m Measurements) Validate() error {
	return m.guard.Validate(ErrMeasurementsAreNotConstructed)
}

// HasMeasurements reports whether a linear length or an area is present.
// Thickness alone does not count as a measurement.
func (m Measurements) HasMeasurements() bool {
	return m.hasLength || m.hasArea
}

// Length returns the linear length and whether it is present.
func (m Measurements) Length() (float64, bool) {
	return m.length, m.hasLength
}

// Area returns the area and whether it is present.
func (m Measurements) Area() (float64, bool) {
	return m.area, m.hasArea
}

// Thickness returns the coating thickness and whether it is present.
func (m Measurements) Thickness() (float64, bool) {
	return m.thickness, m.hasThickness
}

// IsEqual compares measurements field by field.
// Both values must be properly constructed.
func (m Measurements) IsEqual(other Measurements) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	equal := m.hasLength == other.hasLength && m.length == other.length &&
		m.hasArea == other.hasArea && m.area == other.area &&
		m.hasThickness == other.hasThickness && m.thickness == other.thickness
	return equal, nil
}

// String returns a human-readable representation, e.g. "Measurements(length=2.50, thickness=80.00)".
func (m Measurements) String() string {
	parts := make([]string, 0, 3)
	if m.hasLength {
		parts = append(parts, fmt.Sprintf("length=%.2f", m.length))
	}
	if m.hasArea {
		parts = append(parts, fmt.Sprintf("area=%.2f", m.area))
	}
	if m.hasThickness {
		parts = append(parts, fmt.Sprintf("thickness=%.2f", m.thickness))
	}
	if len(parts) == 0 {
		return "Measurements(none)"
	}
	return fmt.Sprintf("Measurements(%s)", strings.Join(parts, ", "))
}

// setLength sets the linear length with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, to enable self-encapsulated validation during object construction.
func (m *Measurements) setLength(length float64) error {
	if length <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("length",
			fmt.Errorf("%v is not greater than 0", length))
	}

	m.length = length
	m.hasLength = true
	return nil
}

// setArea sets the area with validation.
func (m *Measurements) setArea(area float64) error {
	if area <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("area",
			fmt.Errorf("%v is not greater than 0", area))
	}

	m.area = area
	m.hasArea = true
	return nil
}

// setThickness sets the coating thickness with validation.
func (m *Measurements) setThickness(thickness float64) error {
	if thickness <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("thickness",
			fmt.Errorf("%v is not greater than 0", thickness))
	}

	m.thickness = thickness
	m.hasThickness = true
	return nil
}
