package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamile-nails/booking-service/internal/service/bookings"
	"github.com/kamile-nails/booking-service/internal/service/bookings/models"
)

type fakeLogger struct{}

func (fakeLogger) Info(msg string, args ...interface{})  {}
func (fakeLogger) Warn(msg string, args ...interface{})  {}
func (fakeLogger) Error(msg string, args ...interface{}) {}

type fakeService struct {
	resp *models.BookingResponse
	err  error

	gotID string
}

func (f *fakeService) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doCancel(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/"+id+"/cancel", nil)
	rec := httptest.NewRecorder()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", h.Handle).Methods(http.MethodPut)
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{
		resp: &models.BookingResponse{
			ID:        "booking-1",
			Date:      "2025-08-19",
			Time:      "10:00",
			Status:    "cancelled",
			UpdatedAt: time.Date(2025, 8, 19, 15, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(svc, fakeLogger{})

	rec := doCancel(h, "booking-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "booking-1", svc.gotID)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandle_NotFoundOrAlreadyCancelled(t *testing.T) {
	h := NewHandler(&fakeService{err: bookings.ErrBookingNotFound}, fakeLogger{})

	rec := doCancel(h, "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking not found or already cancelled")
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("boom")}, fakeLogger{})

	rec := doCancel(h, "booking-1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
