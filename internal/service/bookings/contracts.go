package bookings

import (
	"context"
	"time"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.ListBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	CountConfirmed(ctx context.Context) (int64, error)
	CountConfirmedByDate(ctx context.Context, date time.Time) (int64, error)
	CountConfirmedInRange(ctx context.Context, from, to time.Time) (int64, error)
}

// EventPublisher интерфейс публикации исходящих событий
type EventPublisher interface {
	Publish(ev events.Event)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
