package ports

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"
)

// DeliveryNoteRepository defines the persistence contract for delivery-note
// aggregates. The core depends only on this interface; the Postgres adapter
// implements it.
type DeliveryNoteRepository interface {
	// Add persists a new delivery-note aggregate, items included.
	// The note must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error

	// Update persists changes to an existing delivery-note aggregate.
	// The item list is replaced wholesale to match the aggregate.
	Update(ctx context.Context, aggregate *deliverynote.DeliveryNote) error

	// Get retrieves a delivery note by its unique identifier,
	// with its complete item list.
	Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error)

	// GetAllValidatedBefore retrieves every note still in validated status
	// whose document date is before the cutoff. Used by the scheduled lock
	// job to finalize overdue documents.
	GetAllValidatedBefore(ctx context.Context, cutoff time.Time) ([]*deliverynote.DeliveryNote, error)
}
