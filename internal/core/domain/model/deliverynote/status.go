package deliverynote

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery note.
// It implements a state machine with defined transitions to ensure
// documents move monotonically towards immutability.
//
// State transitions:
//
//	Draft ──> Validated ──> Finalized
//	  ^           │
//	  └───────────┘
//	      (reopen)
//
// Reopening a draft is a no-op; Finalized has no outgoing edges.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Only drafts accept item-list changes.
	Draft

	// Validated indicates the note's content has been checked and every item
	// carries a price. Item prices may still be corrected.
	Validated

	// Finalized is the terminal status. No further mutation is allowed.
	Finalized
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Draft:     "draft",
		Validated: "validated",
		Finalized: "finalized",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Validated: "validated",
		Finalized: "finalized",
	}
}

// StatusFromString parses a status from its string representation.
// Used when reconstructing notes from serialized form.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Draft, Validated, Finalized.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsEditable reports whether the item list may be changed in this status.
// Only drafts are editable.
func (s Status) IsEditable() bool {
	return s == Draft
}

// MarkValidated transitions the status to Validated.
//
// Valid transitions:
//   - Draft -> Validated
//
// Returns:
//   - (Validated, nil) on valid transition
//   - (0, ErrInvalidStatus) if the note is not a draft
//
// Content preconditions (items present, all priced) are enforced by the
// aggregate, not here.
func (s Status) MarkValidated() (Status, error) {
	if s != Draft {
		return 0, fmt.Errorf("%w: cannot validate a %s note", ErrInvalidStatus, s)
	}

	return Validated, nil
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - Validated -> Finalized
//
// Returns:
//   - (Finalized, nil) on valid transition
//   - (0, ErrInvalidStatus) if the note has not been validated
//
// Finalized is a terminal state with no further transitions possible.
func (s Status) Finalize() (Status, error) {
	if s != Validated {
		return 0, fmt.Errorf("%w: cannot finalize a %s note", ErrInvalidStatus, s)
	}

	return Finalized, nil
}

// Reopen transitions the status back to Draft.
//
// Valid transitions:
//   - Validated -> Draft
//   - Draft -> Draft (no-op)
//
// Returns:
//   - (Draft, nil) on valid transition
//   - (0, ErrAlreadyFinalized) if the note is finalized
//   - (0, ErrInvalidStatus) for invalid status values
func (s Status) Reopen() (Status, error) {
	switch s {
	case Draft:
		return Draft, nil
	case Validated:
		return Draft, nil
	case Finalized:
		return 0, fmt.Errorf("%w: cannot reopen", ErrAlreadyFinalized)
	default:
		return 0, fmt.Errorf("%w: cannot reopen a %s note", ErrInvalidStatus, s)
	}
}
