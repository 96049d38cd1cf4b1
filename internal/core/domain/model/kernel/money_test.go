package kernel_test

import (
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amounts", func(t *testing.T) {
		amounts := []float64{0, 0.01, 1, 50.5, 1000000}

		for _, amount := range amounts {
			t.Run(fmt.Sprintf("should accept %v", amount), func(t *testing.T) {
				m, err := kernel.NewMoney(amount)

				require.NoError(t, err)
				assert.NoError(t, m.Validate())
				assert.InDelta(t, amount, m.Amount(), 0.0001)
			})
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		amounts := []float64{-0.01, -1, -1000}

		for _, amount := range amounts {
			t.Run(fmt.Sprintf("should reject %v", amount), func(t *testing.T) {
				_, err := kernel.NewMoney(amount)

				require.Error(t, err)
				assert.ErrorIs(t, err, kernel.ErrNegativeAmount)

				code, ok := errs.DomainCodeOf(err)
				require.True(t, ok)
				assert.Equal(t, errs.CodeNegativePrice, code)
			})
		}
	})

	t.Run("should reject zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should create valid zero money", func(t *testing.T) {
		m := kernel.ZeroMoney()

		assert.NoError(t, m.Validate())
		assert.True(t, m.IsZero())
		assert.Equal(t, 0.0, m.Amount())
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should add two amounts", func(t *testing.T) {
		a, err := kernel.NewMoney(10.5)
		require.NoError(t, err)
		b, err := kernel.NewMoney(4.5)
		require.NoError(t, err)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.InDelta(t, 15.0, sum.Amount(), 0.0001)
	})

	t.Run("should not mutate the operands", func(t *testing.T) {
		a, err := kernel.NewMoney(10)
		require.NoError(t, err)
		b, err := kernel.NewMoney(5)
		require.NoError(t, err)

		_, err = a.Add(b)
		require.NoError(t, err)

		assert.Equal(t, 10.0, a.Amount())
		assert.Equal(t, 5.0, b.Amount())
	})

	t.Run("should reject unconstructed operands", func(t *testing.T) {
		a, err := kernel.NewMoney(10)
		require.NoError(t, err)
		var b kernel.Money

		_, err = a.Add(b)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_MultiplyBy(t *testing.T) {
	t.Run("should extend a unit price over a quantity", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(12.5)
		require.NoError(t, err)

		total, err := unitPrice.MultiplyBy(4)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, total.Amount(), 0.0001)
	})

	t.Run("should reject non-positive quantities", func(t *testing.T) {
		unitPrice, err := kernel.NewMoney(12.5)
		require.NoError(t, err)

		for _, quantity := range []int{0, -1, -100} {
			_, err = unitPrice.MultiplyBy(quantity)

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestMoney_MultiplyByFactor(t *testing.T) {
	t.Run("should scale the amount", func(t *testing.T) {
		m, err := kernel.NewMoney(40)
		require.NoError(t, err)

		doubled, err := m.MultiplyByFactor(2.0)
		require.NoError(t, err)
		assert.InDelta(t, 80.0, doubled.Amount(), 0.0001)

		surcharged, err := m.MultiplyByFactor(1.7)
		require.NoError(t, err)
		assert.InDelta(t, 68.0, surcharged.Amount(), 0.0001)
	})

	t.Run("should allow a zero factor", func(t *testing.T) {
		m, err := kernel.NewMoney(40)
		require.NoError(t, err)

		zero, err := m.MultiplyByFactor(0)

		require.NoError(t, err)
		assert.True(t, zero.IsZero())
	})

	t.Run("should reject a negative factor", func(t *testing.T) {
		m, err := kernel.NewMoney(40)
		require.NoError(t, err)

		_, err = m.MultiplyByFactor(-1.5)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("should compare amounts with IsLessThan", func(t *testing.T) {
		small, err := kernel.NewMoney(10)
		require.NoError(t, err)
		large, err := kernel.NewMoney(20)
		require.NoError(t, err)

		less, err := small.IsLessThan(large)
		require.NoError(t, err)
		assert.True(t, less)

		less, err = large.IsLessThan(small)
		require.NoError(t, err)
		assert.False(t, less)

		less, err = small.IsLessThan(small)
		require.NoError(t, err)
		assert.False(t, less)
	})

	t.Run("should compare amounts with IsEqual", func(t *testing.T) {
		a, err := kernel.NewMoney(10)
		require.NoError(t, err)
		b, err := kernel.NewMoney(10)
		require.NoError(t, err)
		c, err := kernel.NewMoney(11)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should format with two decimals", func(t *testing.T) {
		m, err := kernel.NewMoney(50)
		require.NoError(t, err)

		assert.Equal(t, "Money(50.00)", m.String())
	})
}
