package errs

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-readable identifier for a domain rule violation.
// Codes are stable across releases and are what API clients switch on;
// the human-readable message may change freely.
type ErrorCode string

// The closed set of domain error codes raised by the core model.
const (
	CodeWithoutCustomer   ErrorCode = "WITHOUT_CUSTOMER"
	CodeNotEditable       ErrorCode = "NOT_EDITABLE"
	CodeItemNotFound      ErrorCode = "ITEM_NOT_FOUND"
	CodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	CodeWithoutItems      ErrorCode = "WITHOUT_ITEMS"
	CodeAlreadyFinalized  ErrorCode = "ALREADY_FINALIZED"
	CodeItemsWithoutPrice ErrorCode = "ITEMS_WITHOUT_PRICE"
	CodeInvalidID         ErrorCode = "INVALID_ID"
	CodeInvalidName       ErrorCode = "INVALID_NAME"
	CodeInvalidQuantity   ErrorCode = "INVALID_QUANTITY"
	CodeNegativePrice     ErrorCode = "NEGATIVE_PRICE"
	CodeInvalidColorCode  ErrorCode = "INVALID_COLOR_CODE"
)

// DomainError is a business-rule violation carrying a machine-readable code.
// Domain packages declare sentinel *DomainError values and return them either
// directly or wrapped with context via fmt.Errorf("%w: ...", sentinel), so both
// errors.Is (against the sentinel) and errors.As (to recover the code) work.
type DomainError struct {
	Code    ErrorCode
	Message string
}

// NewDomainError creates a DomainError with the given code and message.
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// DomainCodeOf extracts the domain error code from err or any error it wraps.
// Returns false if err does not carry a DomainError.
func DomainCodeOf(err error) (ErrorCode, bool) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code, true
	}
	return "", false
}
