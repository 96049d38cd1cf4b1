package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrFinalizeDeliveryNoteCommandIsNotConstructed = errors.New(
	"FinalizeDeliveryNoteCommand must be created via NewFinalizeDeliveryNoteCommand constructor",
)

// FinalizeDeliveryNoteCommand represents a request to lock a validated note.
type FinalizeDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeDeliveryNoteCommand creates a command to finalize a note.
func NewFinalizeDeliveryNoteCommand(noteID kernel.UUID) (FinalizeDeliveryNoteCommand, error) {
	cmd := FinalizeDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNoteID(noteID); err != nil {
		return FinalizeDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the target delivery note identifier.
func (c FinalizeDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

func (c *FinalizeDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}
