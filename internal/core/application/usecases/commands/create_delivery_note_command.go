package commands

import (
	"errors"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateDeliveryNoteCommandIsNotConstructed = errors.New(
		"CreateDeliveryNoteCommand must be created via NewCreateDeliveryNoteCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateDeliveryNoteCommand represents a request to open a new draft delivery
// note for a customer. The document number is reserved by the handler through
// the sequence generator, not supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateDeliveryNoteCommand(kernel.NewUUID(), customerID, "Smith & Sons")
//	if err != nil {
//	    return fmt.Errorf("invalid note data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery note: %w", err)
//	}
type CreateDeliveryNoteCommand struct { //nolint:recvcheck //using for validation
	noteID       kernel.UUID
	customerID   kernel.UUID
	customerName string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryNoteCommand creates a command to open a draft note.
// Validates that both identifiers are valid and the customer name is non-empty.
func NewCreateDeliveryNoteCommand(
	noteID kernel.UUID,
	customerID kernel.UUID,
	customerName string,
) (CreateDeliveryNoteCommand, error) {
	cmd := CreateDeliveryNoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNoteID(noteID),
		cmd.setCustomer(customerID, customerName),
	); err != nil {
		return CreateDeliveryNoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryNoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryNoteCommandIsNotConstructed)
}

// NoteID returns the identifier for the new document.
func (c CreateDeliveryNoteCommand) NoteID() kernel.UUID {
	return c.noteID
}

// CustomerID returns the owning customer reference.
func (c CreateDeliveryNoteCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerName returns the customer display name to cache on the document.
func (c CreateDeliveryNoteCommand) CustomerName() string {
	return c.customerName
}

func (c *CreateDeliveryNoteCommand) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	c.noteID = noteID
	return nil
}

func (c *CreateDeliveryNoteCommand) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(customerName) == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerID = customerID
	c.customerName = strings.TrimSpace(customerName)
	return nil
}
