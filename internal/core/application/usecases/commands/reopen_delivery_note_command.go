package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrReopenDeliveryNoteCommandIsNotConstructed = errors.New(
	"ReopenDeliveryNoteCommand must be created via NewReopenDeliveryNoteCommand constructor",
)

// ReopenDeliveryNoteCommand represents a request to return a validated note
// to the editable draft state.
type ReopenDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReopenDeliveryNoteCommand creates a command to reopen a note.
func NewReopenDeliveryNoteCommand(noteID kernel.UUID) (ReopenDeliveryNoteCommand, error) {
	cmd := ReopenDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNoteID(noteID); err != nil {
		return ReopenDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrReopenDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the target delivery note identifier.
func (c ReopenDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

func (c *ReopenDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}
