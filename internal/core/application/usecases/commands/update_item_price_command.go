package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrUpdateItemPriceCommandIsNotConstructed = errors.New(
	"UpdateItemPriceCommand must be created via NewUpdateItemPriceCommand constructor",
)

// UpdateItemPriceCommand represents a request to set a manual unit price on a
// line item, overriding whatever the pricing profile resolved.
type UpdateItemPriceCommand struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID
	itemID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateItemPriceCommand creates a command to override an item price.
func NewUpdateItemPriceCommand(
	noteID kernel.UUID,
	itemID kernel.UUID,
	price kernel.Money,
) (UpdateItemPriceCommand, error) {
	cmd := UpdateItemPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setParams(noteID, itemID, price); err != nil {
		return UpdateItemPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemPriceCommandIsNotConstructed)
}

// NoteID returns the target delivery note identifier.
func (c UpdateItemPriceCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ItemID returns the identifier of the item to reprice.
func (c UpdateItemPriceCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Price returns the new unit price.
func (c UpdateItemPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *UpdateItemPriceCommand) setParams(noteID kernel.UUID, itemID kernel.UUID, price kernel.Money) error {
	if err := errors.Join(noteID.Validate(), itemID.Validate(), price.Validate()); err != nil {
		return err
	}

	c.noteID = noteID
	c.itemID = itemID
	c.price = price
	return nil
}
