package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetUnfinalizedDeliveryNotesQueryIsNotConstructed = errors.New(
	"GetUnfinalizedDeliveryNotesQuery must be created via NewGetUnfinalizedDeliveryNotesQuery constructor",
)

// GetUnfinalizedDeliveryNotesQuery retrieves all notes still open for work.
// Returns notes in "draft" or "validated" status for the workshop overview.
//
// Example:
//
//	query := NewGetUnfinalizedDeliveryNotesQuery()
//	handler := NewGetUnfinalizedDeliveryNotesQueryHandler(db)
//
//	notes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open notes: %w", err)
//	}
//
//	fmt.Printf("Found %d open notes\n", len(notes))
type GetUnfinalizedDeliveryNotesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnfinalizedDeliveryNotesQuery creates a query to retrieve open notes.
// This is a parameterless query that fetches all non-finalized notes.
func NewGetUnfinalizedDeliveryNotesQuery() GetUnfinalizedDeliveryNotesQuery {
	return GetUnfinalizedDeliveryNotesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnfinalizedDeliveryNotesQueryIsNotConstructed if validation fails.
func (q GetUnfinalizedDeliveryNotesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnfinalizedDeliveryNotesQueryIsNotConstructed)
}

// GetUnfinalizedDeliveryNotesQueryResponse is the list read model for one
// open note. ItemCount comes from a join; items themselves are not loaded.
type GetUnfinalizedDeliveryNotesQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	Date         string
	Status       string
	ItemCount    int
}
