package create_booking

import (
	"time"

	"github.com/kamile-nails/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования.
// Дата и время приходят сырыми строками: их формат проверяет валидация
type Request struct {
	Date        string // "2025-08-19"
	Time        string // "10:00"
	ClientName  string
	ClientPhone string
	Notes       string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	Date        time.Time
	Time        types.TimeString
	ClientName  string
	ClientPhone string
	Notes       string
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
