package queries

import (
	"context"

	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryNoteQueryHandler reads one delivery note straight from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetDeliveryNoteQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryNoteQueryHandler creates a handler for single-note reads.
// Requires a GORM database connection for query execution.
func NewGetDeliveryNoteQueryHandler(db *gorm.DB) GetDeliveryNoteQueryHandler {
	return GetDeliveryNoteQueryHandler{db: db}
}

// Handle executes the query for one delivery note.
// Returns ObjectNotFound when no note matches. The total is summed over
// quantity×price and left nil while any item is missing a price.
func (h GetDeliveryNoteQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryNoteQuery,
) (GetDeliveryNoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}

	var response GetDeliveryNoteQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			customer_name,
			to_char(date, 'YYYY-MM-DD'),
			status,
			notes
		FROM delivery_notes
		WHERE id = ?
	`, query.NoteID().Bytes()).Row()

	var id, customerID uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&response.Number,
		&customerID,
		&response.CustomerName,
		&response.Date,
		&status,
		&response.Notes,
	)
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("delivery note", query.NoteID(), err)
	}

	noteID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	response.ID = noteID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	response.CustomerID = custID
	response.Status = deliverynote.Status(status).String()

	items, total, err := h.loadItems(ctx, query.NoteID())
	if err != nil {
		return GetDeliveryNoteQueryResponse{}, err
	}
	response.Items = items
	response.TotalAmount = total

	return response, nil
}

// loadItems reads the note's line items ordered by name and sums the total.
// The returned total is nil if any item has no price.
func (h GetDeliveryNoteQueryHandler) loadItems(
	ctx context.Context,
	noteID kernel.UUID,
) ([]GetDeliveryNoteItemResponse, *float64, error) {
	items := make([]GetDeliveryNoteItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			color_value,
			color_type,
			quantity,
			length,
			area,
			thickness,
			price
		FROM delivery_note_items
		WHERE delivery_note_id = ?
		ORDER BY name
	`, noteID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	total := 0.0
	allPriced := true

	for rows.Next() {
		var item GetDeliveryNoteItemResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.ColorValue,
			&item.ColorType,
			&item.Quantity,
			&item.Length,
			&item.Area,
			&item.Thickness,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		item.ID = itemID

		if item.UnitPrice != nil {
			itemTotal := *item.UnitPrice * float64(item.Quantity)
			item.TotalPrice = &itemTotal
			total += itemTotal
		} else {
			allPriced = false
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	if !allPriced {
		return items, nil, nil
	}

	return items, &total, nil
}
