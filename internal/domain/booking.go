package domain

import (
	"time"

	"github.com/kamile-nails/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses lists every status a booking may carry.
var ValidStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
}

// Booking represents a salon appointment in the system
type Booking struct {
	ID          string
	Date        time.Time
	Time        types.TimeString
	ClientName  string
	ClientPhone string
	Notes       string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// ListBookingsFilter фильтр для получения списка бронирований
type ListBookingsFilter struct {
	Date   *time.Time     // Фильтр по дате (опционально)
	Status *BookingStatus // Фильтр по статусу (опционально)
}
