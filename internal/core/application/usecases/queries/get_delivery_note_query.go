// Package queries contains read operations for the CQRS architecture.
// Queries bypass the domain model and read the database directly,
// returning flat read models shaped for the HTTP layer.
package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetDeliveryNoteQueryIsNotConstructed = errors.New(
	"GetDeliveryNoteQuery must be created via NewGetDeliveryNoteQuery constructor",
)

// GetDeliveryNoteQuery retrieves a single delivery note with all its line
// items and the computed total.
//
// Example:
//
//	query, err := NewGetDeliveryNoteQuery(noteID)
//	if err != nil {
//	    return err
//	}
//
//	note, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get note: %w", err)
//	}
//
//	fmt.Printf("Note %s has %d items\n", note.Number, len(note.Items))
type GetDeliveryNoteQuery struct { //nolint:recvcheck //using for validation
	noteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryNoteQuery creates a query for one delivery note.
func NewGetDeliveryNoteQuery(noteID kernel.UUID) (GetDeliveryNoteQuery, error) {
	query := GetDeliveryNoteQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setNoteID(noteID); err != nil {
		return GetDeliveryNoteQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryNoteQueryIsNotConstructed if validation fails.
func (q GetDeliveryNoteQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryNoteQueryIsNotConstructed)
}

// NoteID returns the requested delivery note identifier.
func (q GetDeliveryNoteQuery) NoteID() kernel.UUID {
	return q.noteID
}

func (q *GetDeliveryNoteQuery) setNoteID(noteID kernel.UUID) error {
	if err := noteID.Validate(); err != nil {
		return err
	}

	q.noteID = noteID
	return nil
}

// GetDeliveryNoteQueryResponse is the read model for a full delivery note.
// TotalAmount is nil while any item is missing a price.
type GetDeliveryNoteQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerID   kernel.UUID
	CustomerName string
	Date         string
	Status       string
	Notes        string
	Items        []GetDeliveryNoteItemResponse
	TotalAmount  *float64
}

// GetDeliveryNoteItemResponse is the read model for one line item.
// UnitPrice and TotalPrice are nil while the item is unpriced.
type GetDeliveryNoteItemResponse struct {
	ID         kernel.UUID
	Name       string
	ColorValue string
	ColorType  string
	Quantity   int
	Length     *float64
	Area       *float64
	Thickness  *float64
	UnitPrice  *float64
	TotalPrice *float64
}
