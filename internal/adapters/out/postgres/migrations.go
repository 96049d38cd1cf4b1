package postgres

import (
	"workshop/internal/adapters/out/postgres/deliverynoterepo"
	"workshop/internal/adapters/out/postgres/numbergen"
	"workshop/internal/adapters/out/postgres/pricingrepo"

	"gorm.io/gorm"
)

// MigrateDatabase creates or updates every table the adapters persist to.
// Called once at startup before the web server accepts requests.
func MigrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&deliverynoterepo.DeliveryNoteDTO{},
		&deliverynoterepo.LineItemDTO{},
		&pricingrepo.PricingProfileDTO{},
		&pricingrepo.SpecialPriceDTO{},
	); err != nil {
		return err
	}

	return numbergen.Migrate(db)
}
