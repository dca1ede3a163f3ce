package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/domain"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/mailer"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/services"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/store"
)

type allotDriverInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	ID    string `json:"id"`
}

type allotVehicleInput struct {
	Model string `json:"model"`
	RegNo string `json:"regNo"`
	ID    string `json:"id"`
}

type allotInput struct {
	Driver     *allotDriverInput  `json:"driver"`
	Vehicle    *allotVehicleInput `json:"vehicle"`
	AllottedBy string             `json:"allottedBy"`
	Undo       bool               `json:"undo"`
}

func (in *allotInput) validate() error {
	if in.Driver == nil || strings.TrimSpace(in.Driver.Name) == "" {
		return domain.ValidationError{Field: "driver.name"}
	}
	if strings.TrimSpace(in.Driver.Phone) == "" {
		return domain.ValidationError{Field: "driver.phone"}
	}
	if in.Vehicle == nil || strings.TrimSpace(in.Vehicle.Model) == "" {
		return domain.ValidationError{Field: "vehicle.model"}
	}
	if strings.TrimSpace(in.Vehicle.RegNo) == "" {
		return domain.ValidationError{Field: "vehicle.regNo"}
	}
	return nil
}

// AllotBooking assigns a driver and vehicle to a pending booking and
// notifies the customer. The update is authoritative: a failed email is
// reported in mailResult but the allotment stands. Undo clears the
// assignment silently.
func AllotBooking(bookings store.BookingStore, dispatcher mailer.Dispatcher, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("bookingId")

		var input allotInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"ok": false, "error": "invalid request body"})
			return
		}

		if input.Undo {
			booking, err := bookings.Unallot(bookingID)
			if err != nil {
				RespondDomainError(c, err)
				return
			}
			c.JSON(200, gin.H{"ok": true, "message": "allotment cleared", "booking": booking})
			return
		}

		if err := input.validate(); err != nil {
			RespondDomainError(c, err)
			return
		}

		allottedBy := strings.TrimSpace(input.AllottedBy)
		if allottedBy == "" {
			allottedBy = c.GetString("adminEmail")
		}

		booking, err := bookings.Allot(bookingID, store.AllotmentInput{
			DriverName:   strings.TrimSpace(input.Driver.Name),
			DriverPhone:  strings.TrimSpace(input.Driver.Phone),
			DriverID:     strings.TrimSpace(input.Driver.ID),
			VehicleModel: strings.TrimSpace(input.Vehicle.Model),
			VehicleRegNo: strings.TrimSpace(input.Vehicle.RegNo),
			VehicleID:    strings.TrimSpace(input.Vehicle.ID),
			AllottedBy:   allottedBy,
		})
		if err != nil {
			RespondDomainError(c, err)
			return
		}

		mailResult := dispatcher.SendDriverAllotment(
			booking,
			mailer.Driver{Name: input.Driver.Name, Phone: input.Driver.Phone, ID: input.Driver.ID},
			mailer.Vehicle{Model: input.Vehicle.Model, RegNo: input.Vehicle.RegNo, ID: input.Vehicle.ID},
		)
		if !mailResult.OK {
			log.Printf("Driver allotment email failed for %s: %s %s", booking.BookingID, mailResult.Error, mailResult.Detail)
		}

		if hub != nil {
			go hub.BroadcastBookingEvent("booking.allotted", booking)
		}

		c.JSON(200, gin.H{
			"ok":         true,
			"message":    "booking allotted",
			"booking":    booking,
			"mailResult": mailResult,
		})
	}
}

var exportHeader = []string{
	"bookingId", "fullName", "phone", "email", "bookingType", "carType",
	"date", "time", "pickup", "status", "driverName", "driverPhone",
	"vehicleModel", "vehicleRegNo", "allottedBy", "allottedAt", "createdAt",
}

// ExportBookings streams the matching bookings as CSV and archives a
// copy through the storage service.
func ExportBookings(bookings store.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := store.ListParams{
			Filter:  c.DefaultQuery("filter", store.FilterAll),
			Query:   c.Query("q"),
			PerPage: 500,
		}

		var rows []models.Booking
		for page := 1; ; page++ {
			params.Page = page
			batch, total, err := bookings.List(params)
			if err != nil {
				RespondDomainError(c, err)
				return
			}
			rows = append(rows, batch...)
			if len(batch) == 0 || int64(len(rows)) >= total {
				break
			}
		}

		var buf strings.Builder
		writer := csv.NewWriter(&buf)
		writer.Write(exportHeader)
		for i := range rows {
			writer.Write(exportRecord(&rows[i]))
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			RespondDomainError(c, err)
			return
		}

		data := []byte(buf.String())
		if location, err := services.SaveExport("bookings-"+params.Filter, data); err != nil {
			log.Printf("Export archive failed: %v", err)
		} else {
			log.Printf("Export archived at %s", location)
		}

		fileName := fmt.Sprintf("bookings-%s-%s.csv", params.Filter, time.Now().Format("20060102"))
		c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
		c.Data(200, "text/csv", data)
	}
}

func exportRecord(b *models.Booking) []string {
	return []string{
		b.BookingID, b.FullName, b.Phone, b.Email, b.BookingType, b.CarType,
		b.Date, b.Time, b.Pickup, string(b.Status),
		deref(b.DriverName), deref(b.DriverPhone),
		deref(b.VehicleModel), deref(b.VehicleRegNo),
		deref(b.AllottedBy), formatTime(b.AllottedAt),
		b.CreatedAt.Format(time.RFC3339),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
