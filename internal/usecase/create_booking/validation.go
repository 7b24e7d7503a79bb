package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/pkg/types"
)

// FieldError описывает одно нарушение в поле запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors собирает все нарушения запроса: валидация не останавливается
// на первой ошибке
type FieldErrors []FieldError

// Error реализует error
func (e FieldErrors) Error() string {
	messages := make([]string, len(e))
	for i, fe := range e {
		messages[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "create_booking: invalid request: " + strings.Join(messages, "; ")
}

// phoneStripper убирает типичное форматирование номера телефона
var phoneStripper = strings.NewReplacer("(", "", ")", "", "-", "", " ", "")

// validatedRequest результат успешной валидации
type validatedRequest struct {
	date       time.Time
	startTime  types.TimeString
	clientName string // после trim
}

// validateRequest проверяет форму запроса, собирая все нарушения разом
func validateRequest(req *Request) (*validatedRequest, FieldErrors) {
	var fieldErrs FieldErrors

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "date",
			Message: "must be in YYYY-MM-DD format",
		})
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "time",
			Message: "must be in HH:MM format",
		})
	}

	// Длина считается в символах, не в байтах
	clientName := strings.TrimSpace(req.ClientName)
	if utf8.RuneCountInString(clientName) < domain.MinClientNameLength {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "client_name",
			Message: fmt.Sprintf("must have at least %d characters", domain.MinClientNameLength),
		})
	}

	if utf8.RuneCountInString(phoneStripper.Replace(req.ClientPhone)) < domain.MinClientPhoneDigits {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "client_phone",
			Message: fmt.Sprintf("must have at least %d digits", domain.MinClientPhoneDigits),
		})
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &validatedRequest{
		date:       date,
		startTime:  startTime,
		clientName: clientName,
	}, nil
}

// isSlotBooked проверяет, занято ли время среди confirmed бронирований
func isSlotBooked(startTime types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsConfirmed() && b.Time == startTime {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
