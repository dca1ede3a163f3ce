package database

import (
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"gorm.io/gorm"
)

// RunMigrations brings older databases up to the current schema. Early
// deployments predate the driver-allotment and admin password-reset
// columns, so each is added idempotently.
func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.Booking{},
		&models.Admin{},
	)
	if err != nil {
		return err
	}

	migrator := db.Migrator()

	booking := &models.Booking{}
	bookingColumns := []string{
		"DriverName", "DriverPhone", "DriverID",
		"VehicleModel", "VehicleRegNo", "VehicleID",
		"AllottedBy", "AllottedAt",
	}
	for _, column := range bookingColumns {
		if !migrator.HasColumn(booking, column) {
			if err := migrator.AddColumn(booking, column); err != nil {
				return err
			}
		}
	}

	admin := &models.Admin{}
	adminColumns := []string{"ResetToken", "ResetExpires", "PasswordChangedAt"}
	for _, column := range adminColumns {
		if !migrator.HasColumn(admin, column) {
			if err := migrator.AddColumn(admin, column); err != nil {
				return err
			}
		}
	}

	// Rows inserted before the status column got a default
	if err := db.Exec(`UPDATE bookings SET status = 'pending' WHERE status IS NULL OR status = ''`).Error; err != nil {
		return err
	}

	return nil
}
