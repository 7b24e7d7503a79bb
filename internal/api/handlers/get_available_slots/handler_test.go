package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/kamile-nails/booking-service/internal/usecase/get_available_slots"
	"github.com/kamile-nails/booking-service/pkg/types"
)

type handlerFakeLogger struct{}

func (handlerFakeLogger) Info(msg string, args ...interface{})  {}
func (handlerFakeLogger) Warn(msg string, args ...interface{})  {}
func (handlerFakeLogger) Error(msg string, args ...interface{}) {}

type handlerFakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (f *handlerFakeUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doGet(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ReturnsOrderedSlotArray(t *testing.T) {
	uc := &handlerFakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:  time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC),
			Slots: []types.TimeString{"08:00", "09:00", "11:00"},
		},
	}
	h := NewHandler(uc, handlerFakeLogger{})

	rec := doGet(h, "?date=2025-08-19")

	assert.Equal(t, http.StatusOK, rec.Code)

	var slots []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slots))
	assert.Equal(t, []string{"08:00", "09:00", "11:00"}, slots)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC), uc.gotReq.Date)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&handlerFakeUseCase{}, handlerFakeLogger{})

	rec := doGet(h, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Date is required")
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	h := NewHandler(&handlerFakeUseCase{}, handlerFakeLogger{})

	rec := doGet(h, "?date=19-08-2025")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid date format. Use YYYY-MM-DD")
}

func TestHandle_BusinessRuleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantDetail string
	}{
		{
			name:       "weekend",
			err:        getAvailableSlots.ErrNotBusinessDay,
			wantDetail: "We don't work on weekends",
		},
		{
			name:       "past date",
			err:        getAvailableSlots.ErrDateInPast,
			wantDetail: "Cannot book appointments in the past",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&handlerFakeUseCase{err: tt.err}, handlerFakeLogger{})

			rec := doGet(h, "?date=2025-08-23")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantDetail)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&handlerFakeUseCase{err: getAvailableSlots.ErrInternal}, handlerFakeLogger{})

	rec := doGet(h, "?date=2025-08-19")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")
}
