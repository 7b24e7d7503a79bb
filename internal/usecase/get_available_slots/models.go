package get_available_slots

import (
	"time"

	"github.com/kamile-nails/booking-service/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date time.Time // Дата без времени
}

// Response модель ответа со свободными слотами
type Response struct {
	Date  time.Time
	Slots []types.TimeString // По возрастанию
}
