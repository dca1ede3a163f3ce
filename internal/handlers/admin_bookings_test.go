package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
)

func newAdminRouter(bookings *fakeStore, dispatcher *fakeDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", CreateBooking(bookings, dispatcher, nil))
	r.PUT("/admin/bookings/:bookingId/allot", AllotBooking(bookings, dispatcher, nil))
	r.GET("/admin/bookings/export", ExportBookings(bookings))
	return r
}

func putJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedBooking(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := postJSON(t, r, "/api/bookings", validSubmission())
	if w.Code != 201 {
		t.Fatalf("seed booking failed: %d", w.Code)
	}
	bookingID, _ := decodeBody(t, w)["bookingId"].(string)
	return bookingID
}

func validAllotment() map[string]interface{} {
	return map[string]interface{}{
		"driver":  map[string]interface{}{"name": "Ravi", "phone": "8888800000"},
		"vehicle": map[string]interface{}{"model": "Honda City", "regNo": "KA01AB1234"},
	}
}

func TestAllotBooking(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newAdminRouter(bookings, dispatcher)
	bookingID := seedBooking(t, r)

	w := putJSON(t, r, "/admin/bookings/"+bookingID+"/allot", validAllotment())
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	booking, _ := body["booking"].(map[string]interface{})
	if booking["status"] != "allotted" {
		t.Fatalf("expected allotted status in response, got %v", booking["status"])
	}
	if booking["driverName"] != "Ravi" || booking["vehicleRegNo"] != "KA01AB1234" {
		t.Fatalf("driver/vehicle fields not echoed back: %v", booking)
	}
	mailResult, _ := body["mailResult"].(map[string]interface{})
	if mailResult["ok"] != true {
		t.Fatalf("expected advisory mailResult, got %v", body["mailResult"])
	}

	saved, err := bookings.GetByBookingID(bookingID)
	if err != nil {
		t.Fatalf("get after allot: %v", err)
	}
	if saved.Status != models.BookingStatusAllotted || saved.AllottedAt == nil {
		t.Fatalf("allotment not persisted: %+v", saved)
	}
	if dispatcher.allotmentCount() != 1 {
		t.Fatalf("expected one allotment notification, got %d", dispatcher.allotmentCount())
	}
}

func TestAllotBookingMissingDriverPhone(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newAdminRouter(bookings, dispatcher)
	bookingID := seedBooking(t, r)

	input := validAllotment()
	input["driver"] = map[string]interface{}{"name": "Ravi"}
	w := putJSON(t, r, "/admin/bookings/"+bookingID+"/allot", input)
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	saved, _ := bookings.GetByBookingID(bookingID)
	if saved.Status != models.BookingStatusPending || saved.DriverName != nil {
		t.Fatalf("failed allot mutated the row: %+v", saved)
	}
	if dispatcher.allotmentCount() != 0 {
		t.Fatalf("notification sent despite validation failure")
	}
}

func TestAllotUnknownBookingID(t *testing.T) {
	r := newAdminRouter(newFakeStore(), newFakeDispatcher())

	w := putJSON(t, r, "/admin/bookings/RT250828-ZZZZ/allot", validAllotment())
	if w.Code != 404 {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAllotMailFailureStaysAdvisory(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	dispatcher.result.OK = false
	dispatcher.result.Error = "smtp unreachable"
	r := newAdminRouter(bookings, dispatcher)
	bookingID := seedBooking(t, r)

	w := putJSON(t, r, "/admin/bookings/"+bookingID+"/allot", validAllotment())
	if w.Code != 200 {
		t.Fatalf("mail failure must not fail the allotment, got %d", w.Code)
	}
	body := decodeBody(t, w)
	mailResult, _ := body["mailResult"].(map[string]interface{})
	if mailResult["ok"] != false {
		t.Fatalf("expected failed mailResult metadata, got %v", body["mailResult"])
	}

	saved, _ := bookings.GetByBookingID(bookingID)
	if saved.Status != models.BookingStatusAllotted {
		t.Fatalf("allotment did not stick: %+v", saved)
	}
}

func TestUnallotViaUndo(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newAdminRouter(bookings, dispatcher)
	bookingID := seedBooking(t, r)

	if w := putJSON(t, r, "/admin/bookings/"+bookingID+"/allot", validAllotment()); w.Code != 200 {
		t.Fatalf("allot failed: %d", w.Code)
	}
	before := dispatcher.allotmentCount()

	w := putJSON(t, r, "/admin/bookings/"+bookingID+"/allot", map[string]interface{}{"undo": true})
	if w.Code != 200 {
		t.Fatalf("undo failed: %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	booking, _ := body["booking"].(map[string]interface{})
	if booking["status"] != "pending" {
		t.Fatalf("expected pending after undo, got %v", booking["status"])
	}
	if booking["driverName"] != nil || booking["vehicleRegNo"] != nil {
		t.Fatalf("undo left assignment fields: %v", booking)
	}
	if dispatcher.allotmentCount() != before {
		t.Fatalf("undo sent a notification")
	}
}

func TestExportBookingsCSV(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newAdminRouter(bookings, dispatcher)

	first := seedBooking(t, r)
	seedBooking(t, r)
	if w := putJSON(t, r, "/admin/bookings/"+first+"/allot", validAllotment()); w.Code != 200 {
		t.Fatalf("allot failed: %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings/export?filter=all", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != 200 {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %q", ct)
	}

	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 { // header + 2 rows
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "bookingId" {
		t.Fatalf("unexpected csv header: %v", records[0])
	}
}
