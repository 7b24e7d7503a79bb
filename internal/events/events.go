// Package events описывает исходящие события жизненного цикла бронирования.
package events

// Event общий интерфейс исходящего события
type Event interface {
	Kind() string
}

const (
	KindBookingCreated   = "booking.created"
	KindBookingCancelled = "booking.cancelled"
)

// BookingCreated публикуется после успешного создания бронирования
type BookingCreated struct {
	BookingID   string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	ClientName  string
	ClientPhone string
}

// Kind реализует Event
func (BookingCreated) Kind() string { return KindBookingCreated }

// BookingCancelled публикуется после успешной отмены бронирования
type BookingCancelled struct {
	BookingID  string
	Date       string // YYYY-MM-DD
	Time       string // HH:MM
	ClientName string
}

// Kind реализует Event
func (BookingCancelled) Kind() string { return KindBookingCancelled }
