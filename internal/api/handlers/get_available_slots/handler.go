package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/kamile-nails/booking-service/internal/api/handlers"
	"github.com/kamile-nails/booking-service/internal/domain"
	getAvailableSlots "github.com/kamile-nails/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "Date is required"
	msgInvalidDate    = "Invalid date format. Use YYYY-MM-DD"
	msgNotBusinessDay = "We don't work on weekends"
	msgDateInPast     = "Cannot book appointments in the past"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNotBusinessDay):
			h.logger.Warn("GET /available-slots - Not a business day: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgNotBusinessDay)

		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /available-slots - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Ответ: упорядоченный массив строк "HH:MM"
	slots := make([]string, len(result.Slots))
	for i, slot := range result.Slots {
		slots[i] = slot.String()
	}

	h.logger.Info("GET /available-slots - %d slots available: date=%s", len(slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, slots)
}
