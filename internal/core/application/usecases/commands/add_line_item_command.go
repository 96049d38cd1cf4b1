package commands

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
	ErrItemNameIsRequired  = errors.New("item name is required")
	ErrQuantityIsInvalid   = errors.New("quantity must be greater than 0")
	ErrDimensionIsInvalid  = errors.New("dimensions must not be negative")
	ErrConflictingGeometry = errors.New("length and area are mutually exclusive")
)

// AddLineItemCommand represents a request to add one piece to a draft note.
// Dimensions are optional: zero means "not provided". A piece may carry a
// linear length or an area, not both; with neither, the pricing profile's
// minimum charge applies.
//
// The color arrives as raw text and is classified by the handler: a 4-digit
// code (optionally labeled, e.g. "RAL 9010") becomes a standardized color,
// anything else a special color.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	noteID    kernel.UUID
	itemID    kernel.UUID
	name      string
	colorText string
	quantity  int
	length    float64
	area      float64
	thickness float64

	guard guard.ConstructorGuard
}

// NewAddLineItemCommand creates a command to add a piece to a note.
// Validates identifiers, name, quantity, and dimension plausibility; the
// domain value objects re-validate on construction in the handler.
func NewAddLineItemCommand(
	noteID kernel.UUID,
	itemID kernel.UUID,
	name string,
	colorText string,
	quantity int,
	length float64,
	area float64,
	thickness float64,
) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(noteID, itemID),
		cmd.setName(name),
		cmd.setColorText(colorText),
		cmd.setQuantity(quantity),
		cmd.setDimensions(length, area, thickness),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

// NoteID returns the target delivery note identifier.
func (c AddLineItemCommand) NoteID() kernel.UUID {
	return c.noteID
}

// ItemID returns the identifier for the new line item.
func (c AddLineItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the piece description.
func (c AddLineItemCommand) Name() string {
	return c.name
}

// ColorText returns the raw color input to classify.
func (c AddLineItemCommand) ColorText() string {
	return c.colorText
}

// Quantity returns the number of pieces.
func (c AddLineItemCommand) Quantity() int {
	return c.quantity
}

// Length returns the linear length, zero when not provided.
func (c AddLineItemCommand) Length() float64 {
	return c.length
}

// Area returns the area, zero when not provided.
func (c AddLineItemCommand) Area() float64 {
	return c.area
}

// Thickness returns the coating thickness, zero when not provided.
func (c AddLineItemCommand) Thickness() float64 {
	return c.thickness
}

func (c *AddLineItemCommand) setIDs(noteID kernel.UUID, itemID kernel.UUID) error {
	if err := errors.Join(noteID.Validate(), itemID.Validate()); err != nil {
		return err
	}

	c.noteID = noteID
	c.itemID = itemID
	return nil
}

func (c *AddLineItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddLineItemCommand) setColorText(colorText string) error {
	if strings.TrimSpace(colorText) == "" {
		return errors.New("color is required")
	}

	c.colorText = colorText
	return nil
}

func (c *AddLineItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddLineItemCommand) setDimensions(length, area, thickness float64) error {
	if length < 0 || area < 0 || thickness < 0 {
		return ErrDimensionIsInvalid
	}
	if length > 0 && area > 0 {
		return fmt.Errorf("%w: got length %v and area %v", ErrConflictingGeometry, length, area)
	}

	c.length = length
	c.area = area
	c.thickness = thickness
	return nil
}
