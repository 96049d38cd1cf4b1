// Package numbergen provides the Postgres-backed document-number sequence.
// Numbers follow the PREFIX-YEAR-NNN format and restart at 1 each calendar
// year. One counter row exists per (prefix, year) pair and is incremented
// atomically inside the caller's transaction, so concurrent commands never
// observe the same number and a rolled-back command does not burn one.
package numbergen

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// counterDTO represents one sequence row. The composite primary key makes
// the yearly restart implicit: the first number of a new year inserts a
// fresh row starting at 1.
type counterDTO struct {
	Prefix  string `gorm:"type:varchar(16);primaryKey"`
	Year    int    `gorm:"type:int;primaryKey"`
	Counter int    `gorm:"type:int;not null"`
}

// TableName specifies the database table name for sequence rows.
func (counterDTO) TableName() string {
	return "delivery_note_numbers"
}

// Migrate creates or updates the sequence table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&counterDTO{})
}

// GormNumberGenerator implements NumberGenerator using a Postgres counter
// table. Must run inside a transaction; the upsert takes a row lock that
// serializes concurrent allocations for the same year.
type GormNumberGenerator struct {
	db     *gorm.DB
	prefix string
}

// NewGormNumberGenerator creates a number generator with the given prefix.
func NewGormNumberGenerator(db *gorm.DB, prefix string) *GormNumberGenerator {
	return &GormNumberGenerator{
		db:     db,
		prefix: prefix,
	}
}

// NextNumber reserves and returns the next number for the year of the given
// date, e.g. "DN-2026-042". The counter is zero-padded to three digits and
// keeps growing past 999 without truncation.
func (g *GormNumberGenerator) NextNumber(ctx context.Context, date time.Time) (string, error) {
	year := date.Year()

	var counter int
	row := g.db.WithContext(ctx).Raw(`
		INSERT INTO delivery_note_numbers (prefix, year, counter)
		VALUES (?, ?, 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET counter = delivery_note_numbers.counter + 1
		RETURNING counter
	`, g.prefix, year).Row()

	if err := row.Scan(&counter); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%d-%03d", g.prefix, year, counter), nil
}
