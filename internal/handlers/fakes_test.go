package handlers

import (
	"strings"
	"sync"
	"time"

	"github.com/tharunbanothpersonal-spec/radha-travels/internal/domain"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/mailer"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/store"
)

// fakeStore is the in-memory BookingStore substitute for handler tests.
type fakeStore struct {
	mu           sync.Mutex
	nextID       uint
	rows         map[string]*models.Booking
	insertErr    error
	dupRemaining int
	lastList     store.ListParams
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]*models.Booking{}}
}

func (f *fakeStore) Insert(booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	if f.dupRemaining > 0 {
		f.dupRemaining--
		return store.ErrDuplicateBookingID
	}
	if _, exists := f.rows[booking.BookingID]; exists {
		return store.ErrDuplicateBookingID
	}
	f.nextID++
	booking.ID = f.nextID
	saved := *booking
	f.rows[booking.BookingID] = &saved
	return nil
}

func (f *fakeStore) GetByBookingID(bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[bookingID]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	copied := *row
	return &copied, nil
}

func (f *fakeStore) List(params store.ListParams) ([]models.Booking, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = params
	var out []models.Booking
	for _, row := range f.rows {
		switch params.Filter {
		case store.FilterAllotted:
			if row.Status != models.BookingStatusAllotted {
				continue
			}
		case store.FilterAll, store.FilterToday:
		default:
			if row.Status == models.BookingStatusAllotted {
				continue
			}
		}
		if q := strings.ToLower(params.Query); q != "" &&
			!strings.Contains(strings.ToLower(row.FullName), q) &&
			!strings.Contains(strings.ToLower(row.BookingID), q) {
			continue
		}
		out = append(out, *row)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) Allot(bookingID string, input store.AllotmentInput) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[bookingID]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	if row.Status != models.BookingStatusPending {
		return nil, domain.ConflictError{Resource: "booking", Msg: "already allotted"}
	}
	now := time.Now()
	row.DriverName = &input.DriverName
	row.DriverPhone = &input.DriverPhone
	row.VehicleModel = &input.VehicleModel
	row.VehicleRegNo = &input.VehicleRegNo
	if input.AllottedBy != "" {
		row.AllottedBy = &input.AllottedBy
	}
	row.AllottedAt = &now
	row.Status = models.BookingStatusAllotted
	copied := *row
	return &copied, nil
}

func (f *fakeStore) Unallot(bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[bookingID]
	if !ok {
		return nil, domain.NotFoundError{Resource: "booking"}
	}
	row.DriverName = nil
	row.DriverPhone = nil
	row.VehicleModel = nil
	row.VehicleRegNo = nil
	row.AllottedBy = nil
	row.AllottedAt = nil
	row.Status = models.BookingStatusPending
	copied := *row
	return &copied, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

// fakeDispatcher records notification calls; confirmations are signaled
// on a channel so tests can wait for the fire-and-forget goroutine.
type fakeDispatcher struct {
	mu            sync.Mutex
	confirmations chan string
	allotments    []string
	result        mailer.Result
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{
		confirmations: make(chan string, 8),
		result:        mailer.Result{OK: true, Detail: "sent"},
	}
}

func (f *fakeDispatcher) SendBookingConfirmation(booking *models.Booking) mailer.Result {
	f.confirmations <- booking.BookingID
	return f.result
}

func (f *fakeDispatcher) SendDriverAllotment(booking *models.Booking, driver mailer.Driver, vehicle mailer.Vehicle) mailer.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allotments = append(f.allotments, booking.BookingID)
	return f.result
}

func (f *fakeDispatcher) SendAdminReset(admin *models.Admin, resetURL string) mailer.Result {
	return f.result
}

func (f *fakeDispatcher) allotmentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.allotments)
}
