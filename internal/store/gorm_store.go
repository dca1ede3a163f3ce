package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tharunbanothpersonal-spec/radha-travels/internal/domain"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 100
	maxPerPage     = 500
)

// Columns the admin list may sort on. Anything else falls back to
// created_at so raw query params never reach the ORDER BY clause.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"date":      "date",
	"fullName":  "full_name",
	"status":    "status",
	"bookingId": "booking_id",
}

// GormStore implements BookingStore over the shared gorm handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(booking *models.Booking) error {
	if err := s.db.Create(booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateBookingID, booking.BookingID)
		}
		return domain.PersistenceError{Op: "insert booking", Err: err}
	}
	return nil
}

func (s *GormStore) GetByBookingID(bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Where("booking_id = ?", bookingID).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return nil, domain.PersistenceError{Op: "get booking", Err: err}
	}
	return &booking, nil
}

func (s *GormStore) List(params ListParams) ([]models.Booking, int64, error) {
	query := s.db.Model(&models.Booking{})

	if q := strings.TrimSpace(params.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			`LOWER(booking_id) LIKE ? OR LOWER(full_name) LIKE ? OR LOWER(phone) LIKE ?
			 OR LOWER(driver_name) LIKE ? OR LOWER(vehicle_regno) LIKE ? OR LOWER(vehicle_model) LIKE ?`,
			like, like, like, like, like, like,
		)
	}

	switch strings.ToLower(params.Filter) {
	case FilterToday:
		query = query.Where("date = ?", time.Now().Format("2006-01-02"))
	case FilterAllotted:
		query = query.Where("status = ?", models.BookingStatusAllotted)
	case FilterAll:
		// no status constraint
	default: // unassigned
		query = query.Where("status IS NULL OR status = ?", models.BookingStatusPending)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domain.PersistenceError{Op: "count bookings", Err: err}
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortDir, "asc") {
		direction = "ASC"
	}

	var bookings []models.Booking
	err := query.
		Order(column + " " + direction).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, domain.PersistenceError{Op: "list bookings", Err: err}
	}

	return bookings, total, nil
}

func (s *GormStore) Allot(bookingID string, input AllotmentInput) (*models.Booking, error) {
	now := time.Now()

	updates := map[string]interface{}{
		"driver_name":   input.DriverName,
		"driver_phone":  input.DriverPhone,
		"driver_id":     nullable(input.DriverID),
		"vehicle_model": input.VehicleModel,
		"vehicle_regno": input.VehicleRegNo,
		"vehicle_id":    nullable(input.VehicleID),
		"status":        models.BookingStatusAllotted,
		"allotted_by":   nullable(input.AllottedBy),
		"allotted_at":   now,
	}

	// Only a pending booking can be allotted; concurrent allots race on
	// this conditional update and at most one row wins.
	result := s.db.Model(&models.Booking{}).
		Where("booking_id = ? AND (status IS NULL OR status = ?)", bookingID, models.BookingStatusPending).
		Updates(updates)
	if result.Error != nil {
		return nil, domain.PersistenceError{Op: "allot booking", Err: result.Error}
	}

	if result.RowsAffected == 0 {
		booking, err := s.GetByBookingID(bookingID)
		if err != nil {
			return nil, err
		}
		return nil, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("already %s", booking.Status),
		}
	}

	return s.GetByBookingID(bookingID)
}

func (s *GormStore) Unallot(bookingID string) (*models.Booking, error) {
	updates := map[string]interface{}{
		"driver_name":   nil,
		"driver_phone":  nil,
		"driver_id":     nil,
		"vehicle_model": nil,
		"vehicle_regno": nil,
		"vehicle_id":    nil,
		"status":        models.BookingStatusPending,
		"allotted_by":   nil,
		"allotted_at":   nil,
	}

	result := s.db.Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		Updates(updates)
	if result.Error != nil {
		return nil, domain.PersistenceError{Op: "unallot booking", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return nil, domain.NotFoundError{Resource: "booking"}
	}

	return s.GetByBookingID(bookingID)
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
