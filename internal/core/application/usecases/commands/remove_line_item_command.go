package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrRemoveLineItemCommandIsNotConstructed = errors.New(
	"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
)

// RemoveLineItemCommand represents a request to remove one piece from a
// draft delivery note.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveLineItemCommand creates a command to remove a line item.
func NewRemoveLineItemCommand(noteID kernel.UUID, itemID kernel.UUID) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIDs(noteID, itemID); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

// NoteID returns the target delivery note identifier.
func (c RemoveLineItemCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ItemID returns the identifier of the item to remove.
func (c RemoveLineItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveLineItemCommand) setIDs(noteID kernel.UUID, itemID kernel.UUID) error {
	if err := errors.Join(noteID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	c.noteID = noteID
	c.itemID = itemID
	return nil
}
