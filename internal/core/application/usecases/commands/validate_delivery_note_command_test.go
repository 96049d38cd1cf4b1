package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidateDeliveryNoteCommand_ValidInput(t *testing.T) {
	// Arrange
	noteID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewValidateDeliveryNoteCommand(noteID)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.NoteID().IsEqual(noteID))
}

func TestNewValidateDeliveryNoteCommand_InvalidID(t *testing.T) {
	// Arrange
	var zeroID kernel.UUID

	// Act
	_, err := commands.NewValidateDeliveryNoteCommand(zeroID)

	// Assert
	require.Error(t, err)
}

func TestValidateDeliveryNoteCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange
	var cmd commands.ValidateDeliveryNoteCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrValidateDeliveryNoteCommandIsNotConstructed)
}
