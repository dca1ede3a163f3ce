package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the bookings database. The default is an embedded
// single-writer SQLite file; set DB_DRIVER=postgres to run against a
// server instead. TranslateError is on so unique-constraint violations
// surface as gorm.ErrDuplicatedKey regardless of driver.
func InitDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		path := os.Getenv("BOOKING_DB_PATH")
		if path == "" {
			path = filepath.Join("data", "bookings.db")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.Booking{},
		&models.Admin{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
