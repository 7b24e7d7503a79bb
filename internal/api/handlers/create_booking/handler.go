package create_booking

import (
	"errors"
	"net/http"

	"github.com/kamile-nails/booking-service/internal/api/handlers"
	createBooking "github.com/kamile-nails/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgNotBusinessDay = "We don't work on weekends"
	msgDateInPast     = "Cannot book appointments in the past"
	msgSlotTaken      = "This time slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var fieldErrs createBooking.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			h.logger.Warn("POST /bookings - Validation failed: %v", fieldErrs)
			handlers.RespondValidationErrors(w, fieldErrs)

		case errors.Is(err, createBooking.ErrNotBusinessDay):
			h.logger.Warn("POST /bookings - Not a business day: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgNotBusinessDay)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created booking id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
