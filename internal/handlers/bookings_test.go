package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tharunbanothpersonal-spec/radha-travels/internal/models"
)

var bookingIDPattern = regexp.MustCompile(`^RT\d{6}-[A-Z0-9]{4}$`)

func newBookingRouter(bookings *fakeStore, dispatcher *fakeDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/bookings", CreateBooking(bookings, dispatcher, nil))
	r.GET("/api/bookings/:bookingId", GetBooking(bookings))
	r.GET("/api/bookings", ListBookings(bookings))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"fullName":    "Asha Rao",
		"phone":       "9999900000",
		"bookingType": "local-tour",
		"carType":     "Sedan",
	}
}

func TestCreateBookingPersistsPending(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	w := postJSON(t, r, "/api/bookings", validSubmission())
	if w.Code != 201 {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["ok"] != true {
		t.Fatalf("expected ok response, got %v", body)
	}
	bookingID, _ := body["bookingId"].(string)
	if !bookingIDPattern.MatchString(bookingID) {
		t.Fatalf("bookingId %q does not match RTYYMMDD-XXXX", bookingID)
	}

	saved, err := bookings.GetByBookingID(bookingID)
	if err != nil {
		t.Fatalf("booking not persisted: %v", err)
	}
	if saved.Status != models.BookingStatusPending {
		t.Fatalf("expected persisted status pending, got %q", saved.Status)
	}
}

func TestCreateBookingSendsConfirmationAsync(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	w := postJSON(t, r, "/api/bookings", validSubmission())
	if w.Code != 201 {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	bookingID, _ := decodeBody(t, w)["bookingId"].(string)

	select {
	case sent := <-dispatcher.confirmations:
		if sent != bookingID {
			t.Fatalf("confirmation sent for %q, want %q", sent, bookingID)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("confirmation was never dispatched")
	}
}

func TestCreateBookingValidatesRequiredFields(t *testing.T) {
	for _, field := range []string{"fullName", "phone", "bookingType", "carType"} {
		bookings := newFakeStore()
		dispatcher := newFakeDispatcher()
		r := newBookingRouter(bookings, dispatcher)

		submission := validSubmission()
		submission[field] = "   "
		w := postJSON(t, r, "/api/bookings", submission)
		if w.Code != 400 {
			t.Fatalf("blank %s: expected 400, got %d", field, w.Code)
		}
		body := decodeBody(t, w)
		if body["ok"] != false {
			t.Fatalf("blank %s: expected ok=false, got %v", field, body)
		}
		if bookings.count() != 0 {
			t.Fatalf("blank %s: row was persisted despite validation failure", field)
		}
	}
}

func TestCreateBookingRejectsMalformedEmail(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	submission := validSubmission()
	submission["email"] = "not-an-email"
	w := postJSON(t, r, "/api/bookings", submission)
	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed email, got %d", w.Code)
	}
	if bookings.count() != 0 {
		t.Fatalf("row was persisted despite invalid email")
	}

	// Omitting email entirely succeeds
	w = postJSON(t, r, "/api/bookings", validSubmission())
	if w.Code != 201 {
		t.Fatalf("expected 201 without email, got %d", w.Code)
	}
}

func TestCreateBookingRetriesOnDuplicateID(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	// Two colliding ids in a row still leave one retry attempt.
	bookings.dupRemaining = 2
	w := postJSON(t, r, "/api/bookings", validSubmission())
	if w.Code != 201 {
		t.Fatalf("expected 201 after id regeneration, got %d: %s", w.Code, w.Body.String())
	}
	if bookings.count() != 1 {
		t.Fatalf("expected 1 stored booking, got %d", bookings.count())
	}
}

func TestCreateBookingFailsWhenIDSpaceExhausted(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	bookings.dupRemaining = 3
	w := postJSON(t, r, "/api/bookings", validSubmission())
	if w.Code != 500 {
		t.Fatalf("expected 500 after exhausted retries, got %d", w.Code)
	}
	if bookings.count() != 0 {
		t.Fatalf("expected no stored bookings, got %d", bookings.count())
	}
}

func TestGetBooking(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	w := postJSON(t, r, "/api/bookings", validSubmission())
	bookingID, _ := decodeBody(t, w)["bookingId"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != 200 {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	booking, _ := body["booking"].(map[string]interface{})
	if booking["status"] != "pending" {
		t.Fatalf("expected pending booking, got %v", booking)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	r := newBookingRouter(newFakeStore(), newFakeDispatcher())

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/RT250828-ZZZZ", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != 404 {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	if body["ok"] != false {
		t.Fatalf("expected ok=false, got %v", body)
	}
}

func TestListBookingsResponseShape(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	for i := 0; i < 3; i++ {
		postJSON(t, r, "/api/bookings", validSubmission())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/bookings?filter=all", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != 200 {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := decodeBody(t, resp)
	rows, _ := body["bookings"].([]interface{})
	if len(rows) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(rows))
	}
	if total, _ := body["total"].(float64); total != 3 {
		t.Fatalf("expected total 3, got %v", body["total"])
	}
}

func TestListBookingsPerPageParams(t *testing.T) {
	bookings := newFakeStore()
	dispatcher := newFakeDispatcher()
	r := newBookingRouter(bookings, dispatcher)

	cases := []struct {
		query   string
		perPage int
	}{
		{"limit=25", 25},
		{"perPage=10&limit=25", 10},
		{"", 0},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings?"+tc.query, nil)
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != 200 {
			t.Fatalf("query %q: expected 200, got %d", tc.query, resp.Code)
		}
		if got := bookings.lastList.PerPage; got != tc.perPage {
			t.Fatalf("query %q: expected perPage %d, got %d", tc.query, tc.perPage, got)
		}
	}
}
