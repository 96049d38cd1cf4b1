package deliverynote

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrDeliveryNoteIsNotConstructed is returned when a DeliveryNote instance was
// not created through the NewDeliveryNote or RestoreDeliveryNote factory.
var ErrDeliveryNoteIsNotConstructed = errors.New(
	"DeliveryNote must be created via NewDeliveryNote constructor")

// DeliveryNote is the aggregate root representing work done for a customer:
// an ordered collection of priced line items moving through a lifecycle of
// increasing immutability (draft, validated, finalized).
//
// The note is the unit of consistency: line items are never modified except
// through it, and every operation either fully succeeds or fails before any
// field changes. The note never resolves prices itself; callers price items
// through the customer's pricing profile before they enter the aggregate,
// and the aggregate enforces that validation cannot occur until every item
// carries a price.
//
// Invariants:
//   - Identity, number, and customer reference are always non-empty
//   - The item list is mutable only in draft status
//   - Status transitions are monotonic except the single validated -> draft reopen
type DeliveryNote struct {
	// id is the unique identifier of the document
	id kernel.UUID

	// number is the human-readable sequence number, e.g. "DN-2026-042"
	number string

	// customerID references the owning customer
	customerID kernel.UUID

	// customerName caches the customer's display name at creation time
	customerName string

	// date is the document date (day granularity)
	date time.Time

	// status is the current lifecycle state
	status Status

	// items is the ordered list of line items, owned by this note
	items []*LineItem

	// notes is optional free text
	notes string

	// createdAt is the creation timestamp
	createdAt time.Time

	// guard ensures the aggregate was created via a constructor
	guard guard.ConstructorGuard
}

// NewDeliveryNote creates a draft delivery note with an empty item list and
// the current date. This is the factory used when a new document is opened
// for a customer.
//
// Parameters:
//   - id: Unique document identifier (must be a valid UUID)
//   - number: Human-readable sequence number from the number generator (non-empty)
//   - customerID: Owning customer reference (must be a valid UUID)
//   - customerName: Customer display name to cache on the document (non-empty)
//
// Returns the draft note, or an aggregated validation error.
func NewDeliveryNote(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	customerName string,
) (*DeliveryNote, error) {
	now := time.Now()
	note := &DeliveryNote{
		status:    Draft,
		date:      now,
		createdAt: now,
		items:     make([]*LineItem, 0),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		note.setID(id),
		note.setNumber(number),
		note.setCustomer(customerID, customerName),
	); err != nil {
		return nil, err
	}

	return note, nil
}

// RestoreDeliveryNote reconstructs a delivery note from persistent storage
// with an explicit status, item list, and timestamps. The restored note
// behaves identically to one built through normal domain operations.
func RestoreDeliveryNote(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	customerName string,
	date time.Time,
	status Status,
	items []*LineItem,
	notes string,
	createdAt time.Time,
) (*DeliveryNote, error) {
	note := &DeliveryNote{
		date:      date,
		notes:     notes,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		note.setID(id),
		note.setNumber(number),
		note.setCustomer(customerID, customerName),
		note.setStatus(status),
		note.setItems(items),
	); err != nil {
		return nil, err
	}

	return note, nil
}

// Validate ensures the DeliveryNote instance was properly constructed.
// This method is called when reconstructing notes from persistence
// to ensure data integrity.
func (n *DeliveryNote) Validate() error {
	if n == nil {
		return ErrDeliveryNoteIsNotConstructed
	}
	return n.guard.Validate(ErrDeliveryNoteIsNotConstructed)
}

// IsEqual compares two delivery notes by their unique identifiers.
func (n *DeliveryNote) IsEqual(other *DeliveryNote) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the document's unique identifier.
func (n *DeliveryNote) ID() kernel.UUID {
	return n.id
}

// Number returns the human-readable sequence number.
func (n *DeliveryNote) Number() string {
	return n.number
}

// CustomerID returns the owning customer reference.
func (n *DeliveryNote) CustomerID() kernel.UUID {
	return n.customerID
}

// CustomerName returns the cached customer display name.
func (n *DeliveryNote) CustomerName() string {
	return n.customerName
}

// Date returns the document date.
func (n *DeliveryNote) Date() time.Time {
	return n.date
}

// Status returns the current lifecycle state.
func (n *DeliveryNote) Status() Status {
	return n.status
}

// Notes returns the optional free-text notes.
func (n *DeliveryNote) Notes() string {
	return n.notes
}

// CreatedAt returns the creation timestamp.
func (n *DeliveryNote) CreatedAt() time.Time {
	return n.createdAt
}

// IsEditable reports whether the item list may currently be changed.
// True only in draft status.
func (n *DeliveryNote) IsEditable() bool {
	return n.status.IsEditable()
}

// HasItems reports whether the note contains at least one line item.
func (n *DeliveryNote) HasItems() bool {
	return len(n.items) > 0
}

// ItemCount returns the number of line items.
func (n *DeliveryNote) ItemCount() int {
	return len(n.items)
}

// Items returns copies of the line items in document order.
// Copies are returned so outside callers cannot mutate aggregate state;
// all mutation flows through the note's methods.
func (n *DeliveryNote) Items() []LineItem {
	items := make([]LineItem, 0, len(n.items))
	for _, item := range n.items {
		items = append(items, *item)
	}
	return items
}

// AllItemsHavePrice reports whether every line item carries a resolved price.
// An empty item list vacuously satisfies this.
func (n *DeliveryNote) AllItemsHavePrice() bool {
	for _, item := range n.items {
		if !item.HasPrice() {
			return false
		}
	}
	return true
}

// ItemsWithoutPrice returns copies of the line items lacking a resolved price,
// in document order.
func (n *DeliveryNote) ItemsWithoutPrice() []LineItem {
	unpriced := make([]LineItem, 0)
	for _, item := range n.items {
		if !item.HasPrice() {
			unpriced = append(unpriced, *item)
		}
	}
	return unpriced
}

// CalculateTotalAmount returns the sum of every item's extended total and true,
// but only when every item carries a price; otherwise it returns a zero value
// and false. Callers must distinguish "no total yet" from "total is zero":
// an empty item list totals to zero with true.
func (n *DeliveryNote) CalculateTotalAmount() (kernel.Money, bool) {
	total := kernel.ZeroMoney()
	for _, item := range n.items {
		extended, ok := item.TotalPrice()
		if !ok {
			return kernel.Money{}, false
		}

		sum, err := total.Add(extended)
		if err != nil {
			// Unreachable: both operands come from constructed Money values.
			return kernel.Money{}, false
		}
		total = sum
	}
	return total, true
}

// AddItem appends a line item to the note.
//
// Business rules:
//   - The note must be in draft status (ErrNotEditable otherwise)
//   - The item must be properly constructed
//   - The item's identifier must not already be present
func (n *DeliveryNote) AddItem(item *LineItem) error {
	if !n.IsEditable() {
		return fmt.Errorf("%w: status is %s", ErrNotEditable, n.status)
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if n.findItem(item.ID()) != nil {
		return errs.NewValueIsInvalidErrorWithCause("item",
			fmt.Errorf("item %s already exists in note %s", item.ID(), n.id))
	}

	n.items = append(n.items, item)
	return nil
}

// RemoveItem removes the line item with the given identifier.
//
// Business rules:
//   - The note must be in draft status (ErrNotEditable otherwise)
//   - The identifier must be present (ErrItemNotFound otherwise)
func (n *DeliveryNote) RemoveItem(itemID kernel.UUID) error {
	if !n.IsEditable() {
		return fmt.Errorf("%w: status is %s", ErrNotEditable, n.status)
	}

	for idx, item := range n.items {
		if item.ID().IsEqual(itemID) {
			n.items = append(n.items[:idx], n.items[idx+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// UpdateItemPrice sets the resolved unit price on one line item.
// Unlike item-list changes, price corrections are allowed on validated notes;
// only finalized notes reject them.
//
// Failure modes:
//   - ErrAlreadyFinalized if the note is finalized
//   - ErrItemNotFound if the identifier is absent
func (n *DeliveryNote) UpdateItemPrice(itemID kernel.UUID, price kernel.Money) error {
	if n.status == Finalized {
		return fmt.Errorf("%w: cannot change prices", ErrAlreadyFinalized)
	}

	item := n.findItem(itemID)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	return item.AssignPrice(price)
}

// UpdateNotes replaces the free-text notes. Allowed only while the note is
// editable.
func (n *DeliveryNote) UpdateNotes(notes string) error {
	if !n.IsEditable() {
		return fmt.Errorf("%w: status is %s", ErrNotEditable, n.status)
	}

	n.notes = notes
	return nil
}

// MarkValidated moves the draft to validated status.
//
// Preconditions, checked in order before any state changes:
//   - The note is a draft (ErrInvalidStatus otherwise)
//   - The item list is not empty (ErrWithoutItems otherwise)
//   - Every item carries a price (ErrItemsWithoutPrice otherwise)
func (n *DeliveryNote) MarkValidated() error {
	newStatus, err := n.status.MarkValidated()
	if err != nil {
		return err
	}
	if !n.HasItems() {
		return ErrWithoutItems
	}
	if !n.AllItemsHavePrice() {
		return fmt.Errorf("%w: %d item(s) unpriced", ErrItemsWithoutPrice,
			len(n.ItemsWithoutPrice()))
	}

	n.status = newStatus
	return nil
}

// Finalize moves the validated note to its terminal finalized status.
// Prices are not re-checked here: a validated note that lost a price through
// a correction still finalizes.
//
// Returns ErrInvalidStatus if the note has not been validated.
func (n *DeliveryNote) Finalize() error {
	newStatus, err := n.status.Finalize()
	if err != nil {
		return err
	}

	n.status = newStatus
	return nil
}

// Reopen moves a validated note back to draft so its items can be edited again.
// Reopening a draft is a no-op. Returns ErrAlreadyFinalized for finalized notes.
func (n *DeliveryNote) Reopen() error {
	newStatus, err := n.status.Reopen()
	if err != nil {
		return err
	}

	n.status = newStatus
	return nil
}

// findItem returns the stored item with the given id, or nil.
func (n *DeliveryNote) findItem(itemID kernel.UUID) *LineItem {
	for _, item := range n.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// setID validates and sets the document identifier.
// This is a private method used only during construction.
func (n *DeliveryNote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	n.id = id
	return nil
}

// setNumber validates and sets the human-readable sequence number.
func (n *DeliveryNote) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("number")
	}
	n.number = number
	return nil
}

// setCustomer validates and sets the customer reference and cached name.
func (n *DeliveryNote) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrWithoutCustomer, err)
	}
	if strings.TrimSpace(customerName) == "" {
		return fmt.Errorf("%w: customer name is empty", ErrWithoutCustomer)
	}

	n.customerID = customerID
	n.customerName = strings.TrimSpace(customerName)
	return nil
}

// setStatus validates and sets an explicit status during restoration.
func (n *DeliveryNote) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	n.status = status
	return nil
}

// setItems validates and sets the restored item list.
func (n *DeliveryNote) setItems(items []*LineItem) error {
	restored := make([]*LineItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		restored = append(restored, item)
	}
	n.items = restored
	return nil
}
