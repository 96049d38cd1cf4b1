// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// NoteRepoFactory provides access to the delivery-note repository within a transaction.
	NoteRepoFactory interface {
		DeliveryNoteRepository() ports.DeliveryNoteRepository
	}

	// PricingRepoFactory provides access to the pricing-profile repository within a transaction.
	PricingRepoFactory interface {
		PricingProfileRepository() ports.PricingProfileRepository
	}

	// NumberGenFactory provides access to the sequence-number generator within a transaction.
	NumberGenFactory interface {
		NumberGenerator() ports.NumberGenerator
	}

	// NoteUoW manages transactions for note-only operations.
	// Used when commands only touch the delivery-note aggregate.
	NoteUoW interface {
		TxManager
		NoteRepoFactory
	}

	// NoteUoWFactory creates new note unit of work instances.
	NoteUoWFactory interface {
		Create() NoteUoW
	}

	// PricingUoW manages transactions for pricing-only operations.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// UoW manages transactions across notes, pricing, and the number sequence.
	// Used by commands that coordinate more than one of them, such as creating
	// a note (number + note) or adding a priced item (pricing + note).
	UoW interface {
		TxManager
		NoteRepoFactory
		PricingRepoFactory
		NumberGenFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
