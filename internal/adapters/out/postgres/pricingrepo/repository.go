package pricingrepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"
	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingProfileRepository implements PricingProfileRepository using GORM.
type GormPricingProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// orderByPosition keeps preloaded override rows in list order.
func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// NewGormPricingProfileRepository creates a new GORM pricing-profile repository.
func NewGormPricingProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingProfileRepository {
	return &GormPricingProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing profile to the database, overrides included.
func (r *GormPricingProfileRepository) Add(ctx context.Context, aggregate *pricing.PricingProfile) error {
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

// Update saves an existing pricing profile to the database.
// The override rows are replaced wholesale.
func (r *GormPricingProfileRepository) Update(ctx context.Context, aggregate *pricing.PricingProfile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Override rows get fresh identifiers on every save, so the previous
	// set has to be cleared first.
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", dto.ID).
		Delete(&SpecialPriceDTO{}).Error; err != nil {
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

// Get retrieves a pricing profile by ID with its override list.
func (r *GormPricingProfileRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.PricingProfile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingProfileDTO
	if err := r.db.WithContext(ctx).
		Preload("SpecialPrices", orderByPosition).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing profile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCustomer retrieves the pricing profile owned by the given customer.
func (r *GormPricingProfileRepository) GetByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) (*pricing.PricingProfile, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto PricingProfileDTO
	if err := r.db.WithContext(ctx).
		Preload("SpecialPrices", orderByPosition).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing profile for customer", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
