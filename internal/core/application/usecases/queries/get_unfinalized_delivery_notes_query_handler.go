package queries

import (
	"context"

	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnfinalizedDeliveryNotesQueryHandler retrieves open notes from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetUnfinalizedDeliveryNotesQueryHandler struct {
	db *gorm.DB
}

// NewGetUnfinalizedDeliveryNotesQueryHandler creates a handler for open-note queries.
// Requires a GORM database connection for query execution.
func NewGetUnfinalizedDeliveryNotesQueryHandler(db *gorm.DB) GetUnfinalizedDeliveryNotesQueryHandler {
	return GetUnfinalizedDeliveryNotesQueryHandler{db: db}
}

// Handle executes the query to retrieve all unfinalized notes.
// Returns notes in "draft" or "validated" status sorted by document number.
func (h GetUnfinalizedDeliveryNotesQueryHandler) Handle(
	ctx context.Context,
	query GetUnfinalizedDeliveryNotesQuery,
) ([]GetUnfinalizedDeliveryNotesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notes := make([]GetUnfinalizedDeliveryNotesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			n.id,
			n.number,
			n.customer_name,
			to_char(n.date, 'YYYY-MM-DD'),
			n.status,
			count(i.id)
		FROM delivery_notes n
		LEFT JOIN delivery_note_items i ON i.delivery_note_id = n.id
		WHERE n.status != ?
		GROUP BY n.id, n.number, n.customer_name, n.date, n.status
		ORDER BY n.number
	`, deliverynote.Finalized).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var note GetUnfinalizedDeliveryNotesQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&note.Number,
			&note.CustomerName,
			&note.Date,
			&status,
			&note.ItemCount,
		)
		if err != nil {
			return nil, err
		}

		noteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		note.ID = noteID
		note.Status = deliverynote.Status(status).String()

		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}
