package deliverynote

import (
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
)

// dateLayout is the ISO calendar-date format used for the document date.
const dateLayout = "2006-01-02"

// Color variant labels used in serialized form.
const (
	colorVariantStandard = "standard"
	colorVariantSpecial  = "special"
)

// ItemSnapshot is the canonical serialized form of a line item.
type ItemSnapshot struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ColorType  string   `json:"colorType"`
	Color      string   `json:"color"`
	Quantity   int      `json:"quantity"`
	Length     *float64 `json:"length,omitempty"`
	Area       *float64 `json:"area,omitempty"`
	Thickness  *float64 `json:"thickness,omitempty"`
	UnitPrice  *float64 `json:"unitPrice"`
	TotalPrice *float64 `json:"totalPrice"`
}

// Snapshot is the canonical serialized form of a delivery note, used for
// persistence round-trips and as the source for UI/API translation layers.
// TotalAmount is null, not zero, while any item lacks a price.
type Snapshot struct {
	ID                string         `json:"id"`
	Number            string         `json:"number"`
	CustomerID        string         `json:"customerId"`
	CustomerName      string         `json:"customerName"`
	Date              string         `json:"date"`
	Status            string         `json:"status"`
	Items             []ItemSnapshot `json:"items"`
	ItemCount         int            `json:"itemCount"`
	TotalAmount       *float64       `json:"totalAmount"`
	Notes             string         `json:"notes"`
	CreatedAt         time.Time      `json:"createdAt"`
	AllItemsPriced    bool           `json:"allItemsPriced"`
	UnpricedItemCount int            `json:"unpricedItemCount"`
}

// Snapshot returns the canonical serialized representation of the note.
func (n *DeliveryNote) Snapshot() Snapshot {
	items := make([]ItemSnapshot, 0, len(n.items))
	for _, item := range n.items {
		items = append(items, itemSnapshot(item))
	}

	var totalAmount *float64
	if total, ok := n.CalculateTotalAmount(); ok {
		amount := total.Amount()
		totalAmount = &amount
	}

	return Snapshot{
		ID:                n.id.String(),
		Number:            n.number,
		CustomerID:        n.customerID.String(),
		CustomerName:      n.customerName,
		Date:              n.date.Format(dateLayout),
		Status:            n.status.String(),
		Items:             items,
		ItemCount:         n.ItemCount(),
		TotalAmount:       totalAmount,
		Notes:             n.notes,
		CreatedAt:         n.createdAt,
		AllItemsPriced:    n.AllItemsHavePrice(),
		UnpricedItemCount: len(n.ItemsWithoutPrice()),
	}
}

// RestoreFromSnapshot reconstructs a delivery note from its canonical
// serialized form. Serializing a note and restoring it yields a note with
// identical identity, number, customer reference, status, items, and total.
func RestoreFromSnapshot(s Snapshot) (*DeliveryNote, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	customerID, err := kernel.UUIDFromString(s.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWithoutCustomer, err)
	}

	date, err := time.Parse(dateLayout, s.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s.Date, err)
	}

	status, err := StatusFromString(s.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*LineItem, 0, len(s.Items))
	for _, itemSnap := range s.Items {
		item, itemErr := restoreItemFromSnapshot(itemSnap)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return RestoreDeliveryNote(id, s.Number, customerID, s.CustomerName,
		date, status, items, s.Notes, s.CreatedAt)
}

// itemSnapshot converts a line item to its serialized form.
func itemSnapshot(item *LineItem) ItemSnapshot {
	colorType := colorVariantSpecial
	if item.Color().IsStandard() {
		colorType = colorVariantStandard
	}

	snap := ItemSnapshot{
		ID:        item.ID().String(),
		Name:      item.Name(),
		ColorType: colorType,
		Color:     item.Color().Code(),
		Quantity:  item.Quantity(),
	}

	if length, ok := item.Measurements().Length(); ok {
		snap.Length = &length
	}
	if area, ok := item.Measurements().Area(); ok {
		snap.Area = &area
	}
	if thickness, ok := item.Measurements().Thickness(); ok {
		snap.Thickness = &thickness
	}
	if price, ok := item.Price(); ok {
		amount := price.Amount()
		snap.UnitPrice = &amount
	}
	if total, ok := item.TotalPrice(); ok {
		amount := total.Amount()
		snap.TotalPrice = &amount
	}

	return snap
}

// restoreItemFromSnapshot rebuilds a line item from its serialized form.
func restoreItemFromSnapshot(s ItemSnapshot) (*LineItem, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	var color kernel.Color
	if s.ColorType == colorVariantStandard {
		color, err = kernel.NewStandardColor(s.Color)
	} else {
		color, err = kernel.NewSpecialColor(s.Color)
	}
	if err != nil {
		return nil, err
	}

	measurements, err := measurementsFromSnapshot(s)
	if err != nil {
		return nil, err
	}

	var price *kernel.Money
	if s.UnitPrice != nil {
		p, priceErr := kernel.NewMoney(*s.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &p
	}

	return RestoreLineItem(id, s.Name, color, s.Quantity, measurements, price)
}

// measurementsFromSnapshot rebuilds the measurements value from optional fields.
func measurementsFromSnapshot(s ItemSnapshot) (kernel.Measurements, error) {
	var (
		measurements kernel.Measurements
		err          error
	)

	switch {
	case s.Length != nil:
		measurements, err = kernel.NewLinearMeasurements(*s.Length)
	case s.Area != nil:
		measurements, err = kernel.NewAreaMeasurements(*s.Area)
	default:
		measurements = kernel.NewEmptyMeasurements()
	}
	if err != nil {
		return kernel.Measurements{}, err
	}

	if s.Thickness != nil {
		measurements, err = measurements.WithThickness(*s.Thickness)
		if err != nil {
			return kernel.Measurements{}, err
		}
	}

	return measurements, nil
}
