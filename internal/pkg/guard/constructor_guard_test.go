package guard_test

import (
	"errors"
	"testing"

	"workshop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, g)
		require.NoError(t, g.Validate(errors.New("note not constructed")))

		// Nil error falls back to the default
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("delivery note not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage on a value object.
func TestConstructorGuardUsageExample(t *testing.T) {
	// A sample value object carrying a guard
	type CoatColor struct {
		code  string
		guard guard.ConstructorGuard
	}

	var errColorNotConstructed = errors.New("CoatColor must be created via newCoatColor")

	newCoatColor := func(code string) (CoatColor, error) {
		if code == "" {
			return CoatColor{}, errors.New("color code is required")
		}
		return CoatColor{
			code:  code,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateColor := func(c CoatColor) error {
		return c.guard.Validate(errColorNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		color, err := newCoatColor("9010")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateColor(color))
		assert.Equal(t, "9010", color.code)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var color CoatColor // zero value

		// When
		err := validateColor(color)

		// Then
		require.Error(t, err)
		assert.Equal(t, errColorNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCoatColor("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "color code is required")
	})
}

// TestConstructorGuardEmbedded shows the guard carried through an embedded base type.
func TestConstructorGuardEmbedded(t *testing.T) {
	var errPieceNotConstructed = errors.New("WorkPiece must be created via newWorkPiece")

	type guardedPiece struct {
		guard guard.ConstructorGuard
	}

	type WorkPiece struct {
		guardedPiece
		name     string
		quantity int
	}

	newWorkPiece := func(name string, quantity int) (WorkPiece, error) {
		if name == "" {
			return WorkPiece{}, errors.New("piece name is required")
		}
		if quantity <= 0 {
			return WorkPiece{}, errors.New("quantity must be positive")
		}
		return WorkPiece{
			guardedPiece: guardedPiece{guard: guard.NewConstructorGuard()},
			name:         name,
			quantity:     quantity,
		}, nil
	}

	t.Run("valid_piece_construction", func(t *testing.T) {
		// When
		piece, err := newWorkPiece("balcony railing", 2)

		// Then
		require.NoError(t, err)
		require.NoError(t, piece.guard.Validate(errPieceNotConstructed))
		assert.Equal(t, "balcony railing", piece.name)
		assert.Equal(t, 2, piece.quantity)
	})

	t.Run("zero_value_piece_fails_validation", func(t *testing.T) {
		// Given
		var piece WorkPiece // zero value

		// When
		err := piece.guard.Validate(errPieceNotConstructed)

		// Then
		require.Error(t, err)
		assert.Equal(t, errPieceNotConstructed, err)
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		// Then
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent reads.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

// TestConstructorGuardCopySemantics verifies the guard survives value copies.
func TestConstructorGuardCopySemantics(t *testing.T) {
	// Given
	g := guard.NewConstructorGuard()
	testError := errors.New("not constructed")

	// When
	guardCopy := g

	// Then
	require.NoError(t, g.Validate(testError))
	require.NoError(t, guardCopy.Validate(testError))
}

// BenchmarkConstructorGuard measures the overhead of guard allocation and validation.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
