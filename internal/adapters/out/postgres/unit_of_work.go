// Package postgres provides a GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains a list of aggregates affected by a
// business transaction and coordinates writing out changes atomically.
//
// Key Features:
//   - Transaction management across note, pricing, and numbering repositories
//   - Aggregate tracking for domain event processing
//   - Proper isolation between concurrent operations
//   - Automatic rollback on transaction failures
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	number, err := uow.NumberGenerator().NextNumber(ctx, time.Now())
//	if err != nil {
//	    return err
//	}
//
//	if err := uow.DeliveryNoteRepository().Add(ctx, note); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"workshop/internal/adapters/out/postgres/deliverynoterepo"
	"workshop/internal/adapters/out/postgres/numbergen"
	"workshop/internal/adapters/out/postgres/pricingrepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db           *gorm.DB
	numberPrefix string
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The number prefix is baked into every generated document number,
// e.g. "DN" produces "DN-2026-001".
func NewGormUnitOfWorkFactory(db *gorm.DB, numberPrefix string) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, numberPrefix: numberPrefix}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		numberPrefix:      f.numberPrefix,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling patterns like domain event publishing after successful commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	numberPrefix      string
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations will execute within this transaction
// context. Multiple calls to Begin on the same instance are safe and will
// not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DeliveryNoteRepository provides access to note persistence within the unit
// of work. Operations execute within the current transaction if one is
// active, otherwise they use the main database connection.
//
// The returned repository automatically tracks all note aggregates that are
// added or updated.
func (uow *GormUnitOfWork) DeliveryNoteRepository() ports.DeliveryNoteRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return deliverynoterepo.NewGormDeliveryNoteRepository(db, uow)
}

// PricingProfileRepository provides access to pricing-profile persistence
// within the unit of work. Operations execute within the current transaction
// if one is active, otherwise they use the main database connection.
func (uow *GormUnitOfWork) PricingProfileRepository() ports.PricingProfileRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return pricingrepo.NewGormPricingProfileRepository(db, uow)
}

// NumberGenerator provides access to the document-number sequence within the
// unit of work. The counter row is incremented inside the current transaction
// so a rolled-back command does not burn a number.
func (uow *GormUnitOfWork) NumberGenerator() ports.NumberGenerator {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return numbergen.NewGormNumberGenerator(db, uow.numberPrefix)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. This method is typically called by repository implementations when
// aggregates are added, updated, or otherwise modified.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
