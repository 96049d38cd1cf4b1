package kernel_test

import (
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinearMeasurements(t *testing.T) {
	t.Run("should create measurements with a length", func(t *testing.T) {
		m, err := kernel.NewLinearMeasurements(2.5)

		require.NoError(t, err)
		assert.NoError(t, m.Validate())
		assert.True(t, m.HasMeasurements())

		length, ok := m.Length()
		assert.True(t, ok)
		assert.Equal(t, 2.5, length)

		_, ok = m.Area()
		assert.False(t, ok)
		_, ok = m.Thickness()
		assert.False(t, ok)
	})

	t.Run("should reject non-positive lengths", func(t *testing.T) {
		for _, length := range []float64{0, -0.5, -100} {
			t.Run(fmt.Sprintf("should reject %v", length), func(t *testing.T) {
				_, err := kernel.NewLinearMeasurements(length)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestNewAreaMeasurements(t *testing.T) {
	t.Run("should create measurements with an area", func(t *testing.T) {
		m, err := kernel.NewAreaMeasurements(1.75)

		require.NoError(t, err)
		assert.True(t, m.HasMeasurements())

		area, ok := m.Area()
		assert.True(t, ok)
		assert.Equal(t, 1.75, area)

		_, ok = m.Length()
		assert.False(t, ok)
	})

	t.Run("should reject non-positive areas", func(t *testing.T) {
		for _, area := range []float64{0, -1.75} {
			_, err := kernel.NewAreaMeasurements(area)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestNewEmptyMeasurements(t *testing.T) {
	t.Run("should create valid measurements without dimensions", func(t *testing.T) {
		m := kernel.NewEmptyMeasurements()

		assert.NoError(t, m.Validate())
		assert.False(t, m.HasMeasurements())

		_, ok := m.Length()
		assert.False(t, ok)
		_, ok = m.Area()
		assert.False(t, ok)
		_, ok = m.Thickness()
		assert.False(t, ok)
	})
}

func TestMeasurements_WithThickness(t *testing.T) {
	t.Run("should return a copy carrying the thickness", func(t *testing.T) {
		base, err := kernel.NewLinearMeasurements(2.0)
		require.NoError(t, err)

		thick, err := base.WithThickness(80)

		require.NoError(t, err)

		thickness, ok := thick.Thickness()
		assert.True(t, ok)
		assert.Equal(t, 80.0, thickness)

		// The original stays untouched.
		_, ok = base.Thickness()
		assert.False(t, ok)
	})

	t.Run("should not count thickness as a measurement", func(t *testing.T) {
		m, err := kernel.NewEmptyMeasurements().WithThickness(50)

		require.NoError(t, err)
		assert.False(t, m.HasMeasurements())
	})

	t.Run("should reject non-positive thickness", func(t *testing.T) {
		base, err := kernel.NewLinearMeasurements(2.0)
		require.NoError(t, err)

		for _, thickness := range []float64{0, -80} {
			_, err = base.WithThickness(thickness)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should reject zero value measurements", func(t *testing.T) {
		var zero kernel.Measurements

		_, err := zero.WithThickness(80)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMeasurementsAreNotConstructed)
	})
}

func TestMeasurements_IsEqual(t *testing.T) {
	t.Run("should compare field by field", func(t *testing.T) {
		a, err := kernel.NewLinearMeasurements(2.0)
		require.NoError(t, err)
		b, err := kernel.NewLinearMeasurements(2.0)
		require.NoError(t, err)
		c, err := kernel.NewAreaMeasurements(2.0)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should include thickness in the comparison", func(t *testing.T) {
		plain, err := kernel.NewLinearMeasurements(2.0)
		require.NoError(t, err)
		coated, err := plain.WithThickness(80)
		require.NoError(t, err)

		equal, err := plain.IsEqual(coated)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}

func TestMeasurements_String(t *testing.T) {
	t.Run("should list present dimensions", func(t *testing.T) {
		m, err := kernel.NewLinearMeasurements(2.5)
		require.NoError(t, err)
		m, err = m.WithThickness(80)
		require.NoError(t, err)

		assert.Equal(t, "Measurements(length=2.50, thickness=80.00)", m.String())
	})

	t.Run("should mark empty measurements", func(t *testing.T) {
		assert.Equal(t, "Measurements(none)", kernel.NewEmptyMeasurements().String())
	})
}
