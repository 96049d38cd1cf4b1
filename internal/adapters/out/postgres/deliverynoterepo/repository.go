package deliverynoterepo

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/model/deliverynote"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryNoteRepository implements DeliveryNoteRepository using GORM.
type GormDeliveryNoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// orderByPosition keeps preloaded item rows in document order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// NewGormDeliveryNoteRepository creates a new GORM delivery-note repository.
func NewGormDeliveryNoteRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery note to the database, items included.
func (r *GormDeliveryNoteRepository) Add(ctx context.Context, aggregate *deliverynote.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery note to the database.
// The item rows are replaced wholesale so removed items disappear.
func (r *GormDeliveryNoteRepository) Update(ctx context.Context, aggregate *deliverynote.DeliveryNote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Stale item rows are not removed by an association save, so clear the
	// child table for this note before persisting the current item list.
	if err := r.db.WithContext(ctx).
		Where("delivery_note_id = ?", dto.ID).
		Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery note by ID with its complete item list.
func (r *GormDeliveryNoteRepository) Get(ctx context.Context, id kernel.UUID) (*deliverynote.DeliveryNote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryNoteDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery note", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllValidatedBefore retrieves every note still in validated status whose
// document date is before the cutoff. Used by the scheduled lock job.
func (r *GormDeliveryNoteRepository) GetAllValidatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*deliverynote.DeliveryNote, error) {
	var dtos []DeliveryNoteDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		Find(&dtos, "status = ? AND date < ?", deliverynote.Validated, cutoff).Error; err != nil {
		return nil, err
	}

	notes := make([]*deliverynote.DeliveryNote, 0, len(dtos))
	for _, dto := range dtos {
		note, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, nil
}
