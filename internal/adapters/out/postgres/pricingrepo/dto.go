// Package pricingrepo provides data transfer objects and mapping functions
// for pricing-profile persistence. This package implements the repository
// pattern for the pricing-profile aggregate, handling the conversion between
// domain entities and database representations.
package pricingrepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// PricingProfileDTO represents the database structure for persisting
// pricing-profile aggregates. Special-price overrides live in a child table
// and are replaced wholesale with the profile.
type PricingProfileDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	LinearRate    float64           `gorm:"type:numeric;not null"`
	AreaRate      float64           `gorm:"type:numeric;not null"`
	MinimumCharge float64           `gorm:"type:numeric;not null"`
	SpecialPrices []SpecialPriceDTO `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for pricing-profile entities.
// Overrides GORM's default naming convention to use "pricing_profiles".
func (PricingProfileDTO) TableName() string {
	return "pricing_profiles"
}

// SpecialPriceDTO represents the database structure for persisting
// fixed-price overrides. Links to its profile via foreign key. Position
// preserves the order of the override list across round-trips.
type SpecialPriceDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	Position  int       `gorm:"type:int;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     float64   `gorm:"type:numeric;not null"`
}

// TableName specifies the database table name for special-price entities.
// Overrides GORM's default naming convention to use "pricing_special_prices".
func (SpecialPriceDTO) TableName() string {
	return "pricing_special_prices"
}

// fromDomain converts a pricing-profile domain aggregate to its database
// representation. Override rows get fresh identifiers on every save; they
// are value objects without identity in the domain.
func fromDomain(profile *pricing.PricingProfile) PricingProfileDTO {
	profileID := profile.ID().Bytes()
	domainPrices := profile.SpecialPrices()
	specialPrices := make([]SpecialPriceDTO, 0, len(domainPrices))

	for idx, sp := range domainPrices {
		specialPrices = append(specialPrices, SpecialPriceDTO{
			ID:        uuid.New(),
			ProfileID: profileID,
			Position:  idx,
			Name:      sp.Name(),
			Price:     sp.Price().Amount(),
		})
	}

	return PricingProfileDTO{
		ID:            profileID,
		CustomerID:    profile.CustomerID().Bytes(),
		LinearRate:    profile.LinearRate().Amount(),
		AreaRate:      profile.AreaRate().Amount(),
		MinimumCharge: profile.MinimumCharge().Amount(),
		SpecialPrices: specialPrices,
	}
}

// toDomain converts a database DTO to a pricing-profile domain aggregate.
// Reconstructs the complete aggregate including all special prices using
// RestorePricingProfile.
func toDomain(dto PricingProfileDTO) (*pricing.PricingProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	linearRate, err := kernel.NewMoney(dto.LinearRate)
	if err != nil {
		return nil, err
	}

	areaRate, err := kernel.NewMoney(dto.AreaRate)
	if err != nil {
		return nil, err
	}

	minimumCharge, err := kernel.NewMoney(dto.MinimumCharge)
	if err != nil {
		return nil, err
	}

	specialPrices := make([]pricing.SpecialPrice, 0, len(dto.SpecialPrices))
	for _, spDto := range dto.SpecialPrices {
		price, priceErr := kernel.NewMoney(spDto.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		sp, spErr := pricing.NewSpecialPrice(spDto.Name, price)
		if spErr != nil {
			return nil, spErr
		}
		specialPrices = append(specialPrices, sp)
	}

	return pricing.RestorePricingProfile(id, customerID, linearRate, areaRate, minimumCharge, specialPrices)
}
