package store

import (
	"errors"

	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
)

// ErrDuplicateBookingID is returned by Insert when the generated
// booking reference already exists; callers regenerate and retry.
var ErrDuplicateBookingID = errors.New("duplicate booking id")

// List filters understood by the admin panel.
const (
	FilterUnassigned = "unassigned"
	FilterToday      = "today"
	FilterAllotted   = "allotted"
	FilterAll        = "all"
)

// ListParams shape the admin booking list query. Zero values fall back
// to the defaults the dashboard expects: unassigned bookings, newest
// first, 100 per page.
type ListParams struct {
	Filter  string
	Query   string
	Page    int
	PerPage int
	SortBy  string
	SortDir string
}

// AllotmentInput carries the driver and vehicle an admin assigns to a
// booking. IDs are optional free-form references.
type AllotmentInput struct {
	DriverName   string
	DriverPhone  string
	DriverID     string
	VehicleModel string
	VehicleRegNo string
	VehicleID    string
	AllottedBy   string
}

// BookingStore is the single write path to booking rows. Handlers take
// this interface so tests can substitute an in-memory fake.
type BookingStore interface {
	Insert(booking *models.Booking) error
	GetByBookingID(bookingID string) (*models.Booking, error)
	List(params ListParams) ([]models.Booking, int64, error)
	Allot(bookingID string, input AllotmentInput) (*models.Booking, error)
	Unallot(bookingID string) (*models.Booking, error)
}
