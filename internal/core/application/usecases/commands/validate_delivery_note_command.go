package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrValidateDeliveryNoteCommandIsNotConstructed = errors.New(
	"ValidateDeliveryNoteCommand must be created via NewValidateDeliveryNoteCommand constructor",
)

// ValidateDeliveryNoteCommand represents a request to move a draft note to
// the validated state.
type ValidateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidateDeliveryNoteCommand creates a command to validate a note.
func NewValidateDeliveryNoteCommand(noteID kernel.UUID) (ValidateDeliveryNoteCommand, error) {
	cmd := ValidateDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNoteID(noteID); err != nil {
		return ValidateDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrValidateDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the target delivery note identifier.
func (c ValidateDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

func (c *ValidateDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}
