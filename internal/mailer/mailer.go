package mailer

import (
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
)

// Result reports a delivery attempt. It travels back to API callers as
// advisory metadata only; a failed send never fails the booking or
// allotment that triggered it.
type Result struct {
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Driver is the assignment payload echoed into the allotment email.
type Driver struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	ID    string `json:"id,omitempty"`
}

// Vehicle is the assignment payload echoed into the allotment email.
type Vehicle struct {
	Model string `json:"model"`
	RegNo string `json:"regNo"`
	ID    string `json:"id,omitempty"`
}

// Dispatcher composes and delivers booking notifications. Handlers hold
// this interface so tests can capture sends without an SMTP server.
type Dispatcher interface {
	SendBookingConfirmation(booking *models.Booking) Result
	SendDriverAllotment(booking *models.Booking, driver Driver, vehicle Vehicle) Result
	SendAdminReset(admin *models.Admin, resetURL string) Result
}

func okResult(detail string) Result {
	return Result{OK: true, Detail: detail}
}

func failResult(err error) Result {
	return Result{OK: false, Error: err.Error()}
}

func skipResult(reason string) Result {
	return Result{OK: false, Skipped: true, Detail: reason}
}
