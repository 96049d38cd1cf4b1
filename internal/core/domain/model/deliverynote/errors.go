package deliverynote

import "workshop/internal/pkg/errs"

// The closed set of business-rule violations raised by DeliveryNote operations.
// Each sentinel carries a machine-readable code that outer layers translate to
// user-facing responses; the core never recovers from them itself.
var (
	// ErrWithoutCustomer indicates a missing or invalid customer reference.
	ErrWithoutCustomer = errs.NewDomainError(errs.CodeWithoutCustomer,
		"delivery note requires a customer")

	// ErrNotEditable indicates an item-list mutation outside draft status.
	ErrNotEditable = errs.NewDomainError(errs.CodeNotEditable,
		"delivery note can only be edited in draft status")

	// ErrItemNotFound indicates that no line item carries the given identifier.
	ErrItemNotFound = errs.NewDomainError(errs.CodeItemNotFound,
		"line item not found in delivery note")

	// ErrInvalidStatus indicates a lifecycle transition from a wrong status.
	ErrInvalidStatus = errs.NewDomainError(errs.CodeInvalidStatus,
		"operation not allowed in current status")

	// ErrWithoutItems indicates a validation attempt on an empty delivery note.
	ErrWithoutItems = errs.NewDomainError(errs.CodeWithoutItems,
		"delivery note has no line items")

	// ErrAlreadyFinalized indicates a mutation attempt on a finalized note.
	ErrAlreadyFinalized = errs.NewDomainError(errs.CodeAlreadyFinalized,
		"delivery note is finalized")

	// ErrItemsWithoutPrice indicates a validation attempt while items lack prices.
	ErrItemsWithoutPrice = errs.NewDomainError(errs.CodeItemsWithoutPrice,
		"delivery note has line items without a price")

	// ErrInvalidID indicates a missing or malformed entity identifier.
	ErrInvalidID = errs.NewDomainError(errs.CodeInvalidID,
		"identifier is missing or invalid")

	// ErrInvalidName indicates an empty line-item name.
	ErrInvalidName = errs.NewDomainError(errs.CodeInvalidName,
		"name must not be empty")

	// ErrInvalidQuantity indicates a non-positive line-item quantity.
	ErrInvalidQuantity = errs.NewDomainError(errs.CodeInvalidQuantity,
		"quantity must be greater than 0")
)
