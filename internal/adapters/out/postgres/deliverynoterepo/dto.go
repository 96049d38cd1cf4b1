// Package deliverynoterepo provides data transfer objects and mapping
// functions for delivery-note persistence. This package implements the
// repository pattern for the delivery-note aggregate, handling the
// conversion between domain entities and database representations.
package deliverynoterepo

import (
	"time"

	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryNoteDTO represents the database structure for persisting
// delivery-note aggregates. Line items live in a child table and are
// loaded and replaced together with the note.
type DeliveryNoteDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Number       string        `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	CustomerName string        `gorm:"type:varchar(255);not null"`
	Date         time.Time     `gorm:"type:date;not null"`
	Status       int           `gorm:"type:int;not null;index"`
	Notes        string        `gorm:"type:text"`
	CreatedAt    time.Time     `gorm:"not null"`
	Items        []LineItemDTO `gorm:"foreignKey:DeliveryNoteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery-note entities.
// Overrides GORM's default naming convention to use "delivery_notes".
func (DeliveryNoteDTO) TableName() string {
	return "delivery_notes"
}

// LineItemDTO represents the database structure for persisting line items.
// Links to its note via foreign key. ColorType distinguishes standardized
// codes from free-text colors; the optional dimensions and the price are
// nullable columns. Position preserves document order across round-trips.
type LineItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryNoteID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position       int       `gorm:"type:int;not null"`
	Name           string    `gorm:"type:varchar(255);not null"`
	ColorValue     string    `gorm:"type:varchar(255);not null"`
	ColorType      string    `gorm:"type:varchar(16);not null"`
	Quantity       int       `gorm:"type:int;not null"`
	Length         *float64  `gorm:"type:numeric"`
	Area           *float64  `gorm:"type:numeric"`
	Thickness      *float64  `gorm:"type:numeric"`
	Price          *float64  `gorm:"type:numeric"`
}

// TableName specifies the database table name for line-item entities.
// Overrides GORM's default naming convention to use "delivery_note_items".
func (LineItemDTO) TableName() string {
	return "delivery_note_items"
}

const (
	colorTypeStandard = "standard"
	colorTypeSpecial  = "special"
)

// fromDomain converts a delivery-note domain aggregate to its database
// representation, items included.
func fromDomain(note *deliverynote.DeliveryNote) DeliveryNoteDTO {
	noteID := note.ID().Bytes()
	domainItems := note.Items()
	items := make([]LineItemDTO, 0, len(domainItems))

	for idx := range domainItems {
		items = append(items, itemFromDomain(&domainItems[idx], noteID, idx))
	}

	return DeliveryNoteDTO{
		ID:           noteID,
		Number:       note.Number(),
		CustomerID:   note.CustomerID().Bytes(),
		CustomerName: note.CustomerName(),
		Date:         note.Date(),
		Status:       int(note.Status()),
		Notes:        note.Notes(),
		CreatedAt:    note.CreatedAt(),
		Items:        items,
	}
}

// itemFromDomain converts one line item to its database representation.
func itemFromDomain(item *deliverynote.LineItem, noteID uuid.UUID, position int) LineItemDTO {
	colorType := colorTypeStandard
	if item.Color().IsSpecial() {
		colorType = colorTypeSpecial
	}

	var length, area, thickness, price *float64
	if v, ok := item.Measurements().Length(); ok {
		length = &v
	}
	if v, ok := item.Measurements().Area(); ok {
		area = &v
	}
	if v, ok := item.Measurements().Thickness(); ok {
		thickness = &v
	}
	if p, ok := item.Price(); ok {
		amount := p.Amount()
		price = &amount
	}

	return LineItemDTO{
		ID:             item.ID().Bytes(),
		DeliveryNoteID: noteID,
		Position:       position,
		Name:           item.Name(),
		ColorValue:     item.Color().Code(),
		ColorType:      colorType,
		Quantity:       item.Quantity(),
		Length:         length,
		Area:           area,
		Thickness:      thickness,
		Price:          price,
	}
}

// toDomain converts a database DTO to a delivery-note domain aggregate.
// Reconstructs the complete aggregate including all line items using
// RestoreDeliveryNote.
func toDomain(dto DeliveryNoteDTO) (*deliverynote.DeliveryNote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*deliverynote.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return deliverynote.RestoreDeliveryNote(
		id,
		dto.Number,
		customerID,
		dto.CustomerName,
		dto.Date,
		deliverynote.Status(dto.Status),
		items,
		dto.Notes,
		dto.CreatedAt,
	)
}

// itemToDomain converts a line-item DTO to its domain entity.
// Uses RestoreLineItem to reconstruct the entity with its persisted price.
func itemToDomain(dto LineItemDTO) (*deliverynote.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var color kernel.Color
	if dto.ColorType == colorTypeSpecial {
		color, err = kernel.NewSpecialColor(dto.ColorValue)
	} else {
		color, err = kernel.NewStandardColor(dto.ColorValue)
	}
	if err != nil {
		return nil, err
	}

	measurements, err := measurementsToDomain(dto)
	if err != nil {
		return nil, err
	}

	var price *kernel.Money
	if dto.Price != nil {
		p, priceErr := kernel.NewMoney(*dto.Price)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &p
	}

	return deliverynote.RestoreLineItem(id, dto.Name, color, dto.Quantity, measurements, price)
}

// measurementsToDomain rebuilds the measurements value object from the
// nullable dimension columns.
func measurementsToDomain(dto LineItemDTO) (kernel.Measurements, error) {
	var (
		measurements kernel.Measurements
		err          error
	)

	switch {
	case dto.Length != nil:
		measurements, err = kernel.NewLinearMeasurements(*dto.Length)
	case dto.Area != nil:
		measurements, err = kernel.NewAreaMeasurements(*dto.Area)
	default:
		measurements = kernel.NewEmptyMeasurements()
	}
	if err != nil {
		return kernel.Measurements{}, err
	}

	if dto.Thickness != nil {
		measurements, err = measurements.WithThickness(*dto.Thickness)
		if err != nil {
			return kernel.Measurements{}, err
		}
	}

	return measurements, nil
}
