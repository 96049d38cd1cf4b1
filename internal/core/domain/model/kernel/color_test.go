package kernel_test

import (
	"fmt"
	"testing"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardColor(t *testing.T) {
	t.Run("should normalize valid codes", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"9010", "9010"},
			{"RAL 9010", "9010"},
			{"  7016  ", "7016"},
			{"ral 3000", "3000"},
			{"NCS 1234", "1234"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should normalize %q to %q", tc.input, tc.expected), func(t *testing.T) {
				c, err := kernel.NewStandardColor(tc.input)

				require.NoError(t, err)
				assert.NoError(t, c.Validate())
				assert.True(t, c.IsStandard())
				assert.False(t, c.IsSpecial())
				assert.Equal(t, tc.expected, c.Code())
			})
		}
	})

	t.Run("should reject inputs that are not a 4-digit code", func(t *testing.T) {
		inputs := []string{"", "901", "90100", "901a", "RAL", "RAL 901", "hammered copper", "RAL  9010  x"}

		for _, input := range inputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				_, err := kernel.NewStandardColor(input)

				require.Error(t, err)
				assert.ErrorIs(t, err, kernel.ErrInvalidColorCode)

				code, ok := errs.DomainCodeOf(err)
				require.True(t, ok)
				assert.Equal(t, errs.CodeInvalidColorCode, code)
			})
		}
	})
}

func TestNewSpecialColor(t *testing.T) {
	t.Run("should create special color from free text", func(t *testing.T) {
		c, err := kernel.NewSpecialColor("hammered copper")

		require.NoError(t, err)
		assert.True(t, c.IsSpecial())
		assert.False(t, c.IsStandard())
		assert.Equal(t, "hammered copper", c.Code())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		c, err := kernel.NewSpecialColor("  anthracite structure  ")

		require.NoError(t, err)
		assert.Equal(t, "anthracite structure", c.Code())
	})

	t.Run("should reject empty text", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewSpecialColor(input)

			require.Error(t, err)
			assert.ErrorIs(t, err, kernel.ErrColorTextIsRequired)
		}
	})
}

func TestClassifyColor(t *testing.T) {
	t.Run("should classify 4-digit inputs as standard", func(t *testing.T) {
		for _, input := range []string{"9010", "RAL 9010", " 7016 "} {
			c, err := kernel.ClassifyColor(input)

			require.NoError(t, err)
			assert.True(t, c.IsStandard(), "expected %q to classify as standard", input)
		}
	})

	t.Run("should classify free text as special", func(t *testing.T) {
		for _, input := range []string{"hammered copper", "90100", "RAL", "matte black 2.0"} {
			c, err := kernel.ClassifyColor(input)

			require.NoError(t, err)
			assert.True(t, c.IsSpecial(), "expected %q to classify as special", input)
		}
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := kernel.ClassifyColor("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrColorTextIsRequired)
	})
}

func TestColor_IsEqual(t *testing.T) {
	t.Run("should treat normalized codes as equal", func(t *testing.T) {
		a, err := kernel.NewStandardColor("RAL 9010")
		require.NoError(t, err)
		b, err := kernel.NewStandardColor("9010")
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should distinguish variants with the same value", func(t *testing.T) {
		standard, err := kernel.NewStandardColor("9010")
		require.NoError(t, err)
		// Not reachable through ClassifyColor, but the variant still matters.
		special, err := kernel.NewSpecialColor("9010 custom")
		require.NoError(t, err)

		equal, err := standard.IsEqual(special)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should reject zero value colors", func(t *testing.T) {
		c, err := kernel.NewStandardColor("9010")
		require.NoError(t, err)
		var zero kernel.Color

		_, err = c.IsEqual(zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrColorIsNotConstructed)
	})
}

func TestColor_String(t *testing.T) {
	t.Run("should include the variant in the representation", func(t *testing.T) {
		standard, err := kernel.NewStandardColor("9010")
		require.NoError(t, err)
		special, err := kernel.NewSpecialColor("hammered copper")
		require.NoError(t, err)

		assert.Equal(t, "StandardColor(9010)", standard.String())
		assert.Equal(t, "SpecialColor(hammered copper)", special.String())
	})
}
