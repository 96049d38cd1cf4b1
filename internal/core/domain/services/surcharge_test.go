package services_test

import (
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return money
}

func mustThickMeasurements(t *testing.T, length, thickness float64) kernel.Measurements {
	t.Helper()
	m, err := kernel.NewLinearMeasurements(length)
	require.NoError(t, err)
	m, err = m.WithThickness(thickness)
	require.NoError(t, err)
	return m
}

func TestPrimerSurcharge(t *testing.T) {
	t.Run("should double the base price", func(t *testing.T) {
		surcharge := services.NewPrimerSurcharge()

		price, err := surcharge.Apply(mustMoney(t, 50), kernel.NewEmptyMeasurements())

		require.NoError(t, err)
		assert.InDelta(t, 100.0, price.Amount(), 0.0001)
	})

	t.Run("should report its configuration name", func(t *testing.T) {
		assert.Equal(t, "primer", services.NewPrimerSurcharge().Name())
	})
}

func TestNewThicknessSurcharge(t *testing.T) {
	t.Run("should reject a non-positive threshold", func(t *testing.T) {
		_, err := services.NewThicknessSurcharge(0)
		require.Error(t, err)

		_, err = services.NewThicknessSurcharge(-5)
		require.Error(t, err)
	})
}

func TestThicknessSurcharge_Apply(t *testing.T) {
	surcharge, err := services.NewThicknessSurcharge(30)
	require.NoError(t, err)

	t.Run("should scale the price above the threshold", func(t *testing.T) {
		price, applyErr := surcharge.Apply(mustMoney(t, 100), mustThickMeasurements(t, 2, 35))

		require.NoError(t, applyErr)
		assert.InDelta(t, 170.0, price.Amount(), 0.0001)
	})

	t.Run("should leave the price alone at the threshold", func(t *testing.T) {
		price, applyErr := surcharge.Apply(mustMoney(t, 100), mustThickMeasurements(t, 2, 30))

		require.NoError(t, applyErr)
		assert.InDelta(t, 100.0, price.Amount(), 0.0001)
	})

	t.Run("should leave unmeasured pieces alone", func(t *testing.T) {
		price, applyErr := surcharge.Apply(mustMoney(t, 100), kernel.NewEmptyMeasurements())

		require.NoError(t, applyErr)
		assert.InDelta(t, 100.0, price.Amount(), 0.0001)
	})
}

func TestApplySurcharges(t *testing.T) {
	t.Run("should return the base price with no surcharges", func(t *testing.T) {
		price, err := services.ApplySurcharges(mustMoney(t, 50), kernel.NewEmptyMeasurements(), nil)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, price.Amount(), 0.0001)
	})

	t.Run("should compound surcharges in order", func(t *testing.T) {
		thickness, err := services.NewThicknessSurcharge(30)
		require.NoError(t, err)
		surcharges := []services.Surcharge{services.NewPrimerSurcharge(), thickness}

		// 50 doubled to 100, then scaled by 1.7.
		price, err := services.ApplySurcharges(
			mustMoney(t, 50), mustThickMeasurements(t, 2, 40), surcharges)

		require.NoError(t, err)
		assert.InDelta(t, 170.0, price.Amount(), 0.0001)
	})
}
