package cancel_booking

import (
	"context"

	"github.com/kamile-nails/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, id string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
