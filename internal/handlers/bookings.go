package handlers

import (
	"errors"
	"log"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/domain"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/mailer"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/services"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/store"
	"github.com/tharunbanothpersonal-spec/radha-travels/pkg/utils"
)

// Generated ids collide only on a same-day suffix clash; one or two
// regenerations clear it.
const insertAttempts = 3

type bookingInput struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BookingType string `json:"bookingType"`
	CarType     string `json:"carType"`
	NumDays     *int   `json:"numDays"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Pickup      string `json:"pickup"`
	Notes       string `json:"notes"`
	Service     string `json:"service"`
	Source      string `json:"source"`
}

func (in *bookingInput) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return domain.ValidationError{Field: "fullName"}
	}
	if strings.TrimSpace(in.Phone) == "" {
		return domain.ValidationError{Field: "phone"}
	}
	if strings.TrimSpace(in.BookingType) == "" {
		return domain.ValidationError{Field: "bookingType"}
	}
	if strings.TrimSpace(in.CarType) == "" {
		return domain.ValidationError{Field: "carType"}
	}
	if email := strings.TrimSpace(in.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return domain.ValidationError{Field: "email", Msg: "invalid", Err: err}
		}
	}
	return nil
}

// CreateBooking handles the public booking form. The row is persisted
// and acknowledged before any notification goes out; mail delivery is
// fire-and-forget and never affects the response.
func CreateBooking(bookings store.BookingStore, dispatcher mailer.Dispatcher, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input bookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "invalid request body"})
			return
		}

		if err := input.validate(); err != nil {
			RespondDomainError(c, err)
			return
		}

		numDays := input.NumDays
		if numDays != nil && *numDays <= 0 {
			numDays = nil
		}

		booking := &models.Booking{
			FullName:    strings.TrimSpace(input.FullName),
			Phone:       strings.TrimSpace(input.Phone),
			Email:       strings.TrimSpace(input.Email),
			BookingType: strings.TrimSpace(input.BookingType),
			CarType:     strings.TrimSpace(input.CarType),
			NumDays:     numDays,
			Date:        input.Date,
			Time:        input.Time,
			Pickup:      input.Pickup,
			Notes:       input.Notes,
			Service:     input.Service,
			Source:      input.Source,
			Status:      models.BookingStatusPending,
			CreatedAt:   time.Now(),
		}

		var insertErr error
		for attempt := 0; attempt < insertAttempts; attempt++ {
			booking.BookingID = utils.NewBookingID()
			insertErr = bookings.Insert(booking)
			if insertErr == nil || !errors.Is(insertErr, store.ErrDuplicateBookingID) {
				break
			}
			log.Printf("Booking id collision on %s, regenerating", booking.BookingID)
		}
		if insertErr != nil {
			RespondDomainError(c, insertErr)
			return
		}

		c.JSON(201, gin.H{
			"ok":        true,
			"bookingId": booking.BookingID,
			"id":        booking.ID,
			"message":   "Booking stored",
		})

		// Fire-and-forget: confirmation mail and the admin feed run after
		// the response; their failure is logged, never surfaced.
		saved := *booking
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Booking notification panic for %s: %v", saved.BookingID, r)
				}
			}()

			if result := dispatcher.SendBookingConfirmation(&saved); !result.OK {
				log.Printf("Booking confirmation failed for %s: %s %s", saved.BookingID, result.Error, result.Detail)
			} else {
				log.Printf("Booking email sent: %s", saved.BookingID)
			}

			if hub != nil {
				hub.BroadcastBookingEvent("booking.created", &saved)
			}
		}()
	}
}

// GetBooking retrieves one booking by its external reference
func GetBooking(bookings store.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		booking, err := bookings.GetByBookingID(c.Param("bookingId"))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(200, gin.H{"ok": true, "booking": booking})
	}
}

// ListBookings serves the admin dashboard table: filter, search,
// pagination and sorting all happen in the store. Read-only.
func ListBookings(bookings store.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

		// perPage wins over its legacy alias limit; the store applies the
		// default and cap when neither parses.
		raw := c.Query("perPage")
		if raw == "" {
			raw = c.Query("limit")
		}
		perPage, _ := strconv.Atoi(raw)

		params := store.ListParams{
			Filter:  c.DefaultQuery("filter", store.FilterUnassigned),
			Query:   c.Query("q"),
			Page:    page,
			PerPage: perPage,
			SortBy:  c.Query("sortBy"),
			SortDir: c.Query("sortDir"),
		}

		rows, total, err := bookings.List(params)
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		c.JSON(200, gin.H{"ok": true, "bookings": rows, "total": total})
	}
}
