package get_available_slots

import (
	"time"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/pkg/types"
)

// availableSlots вычитает занятые времена из фиксированной сетки слотов,
// сохраняя возрастающий порядок
func availableSlots(bookings []*domain.Booking) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		// Отменённые бронирования слот не занимают
		if !b.IsConfirmed() {
			continue
		}
		booked[b.Time] = struct{}{}
	}

	allSlots := domain.AllSlots()
	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
