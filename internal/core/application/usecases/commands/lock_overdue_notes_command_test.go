package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLockOverdueNotesCommand_ValidInput(t *testing.T) {
	// Arrange
	cutoff := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)

	// Act
	cmd, err := commands.NewLockOverdueNotesCommand(cutoff)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.Cutoff().Equal(cutoff))
}

func TestNewLockOverdueNotesCommand_ZeroCutoff(t *testing.T) {
	// Act
	_, err := commands.NewLockOverdueNotesCommand(time.Time{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCutoffIsRequired)
}

func TestLockOverdueNotesCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.LockOverdueNotesCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLockOverdueNotesCommandIsNotConstructed)
}
