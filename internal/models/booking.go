package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAllotted BookingStatus = "allotted"
)

// Known booking kinds offered on the public site. The form sends one of
// these but the column stays free-form text.
const (
	BookingTypeLocalTour       = "local-tour"
	BookingTypeOutstation      = "outstation"
	BookingTypeAirportTransfer = "airport-transfer"
	BookingTypeCorporate       = "corporate"
	BookingTypeCustom          = "custom"
)

// Booking is one customer ride request. BookingID is the external
// reference printed on emails; ID stays internal.
type Booking struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	BookingID   string        `json:"bookingId" gorm:"column:booking_id;uniqueIndex;not null"`
	FullName    string        `json:"fullName" gorm:"column:full_name;not null"`
	Phone       string        `json:"phone" gorm:"not null"`
	Email       string        `json:"email"`
	BookingType string        `json:"bookingType" gorm:"column:booking_type;not null"`
	CarType     string        `json:"carType" gorm:"column:car_type;not null"`
	NumDays     *int          `json:"numDays" gorm:"column:num_days"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Pickup      string        `json:"pickup"`
	Notes       string        `json:"notes"`
	Service     string        `json:"service"`
	Source      string        `json:"source"`
	Status      BookingStatus `json:"status" gorm:"not null;default:'pending'"`

	DriverName   *string `json:"driverName" gorm:"column:driver_name"`
	DriverPhone  *string `json:"driverPhone" gorm:"column:driver_phone"`
	DriverID     *string `json:"driverId" gorm:"column:driver_id"`
	VehicleModel *string `json:"vehicleModel" gorm:"column:vehicle_model"`
	VehicleRegNo *string `json:"vehicleRegNo" gorm:"column:vehicle_regno"`
	VehicleID    *string `json:"vehicleId" gorm:"column:vehicle_id"`

	AllottedBy *string    `json:"allottedBy" gorm:"column:allotted_by"`
	AllottedAt *time.Time `json:"allottedAt" gorm:"column:allotted_at"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// Allotted reports whether a driver and vehicle are assigned.
func (b *Booking) Allotted() bool {
	return b.Status == BookingStatusAllotted
}
