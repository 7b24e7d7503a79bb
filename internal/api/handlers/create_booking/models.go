package create_booking

import (
	"time"

	"github.com/kamile-nails/booking-service/internal/domain"
	createBooking "github.com/kamile-nails/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest тело запроса POST /bookings
type CreateBookingRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

// CreateBookingResponse созданная запись
type CreateBookingResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"` // "2025-08-19"
	Time        string    `json:"time"` // "10:00"
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:        r.Date,
		Time:        r.Time,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Notes:       r.Notes,
	}
}

func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:          resp.ID,
		Date:        resp.Date.Format(domain.DateFormat),
		Time:        resp.Time.String(),
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		Notes:       resp.Notes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}
}
