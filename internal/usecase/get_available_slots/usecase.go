package get_available_slots

import (
	"context"
	"fmt"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/pkg/ptr"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: empty date")
		return nil, ErrInvalidDate
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Бизнес-правила даты: рабочий день и не в прошлом
	if !domain.IsBusinessDay(req.Date) {
		uc.logger.Warn("GetAvailableSlots: %s is not a business day", req.Date.Format(domain.DateFormat))
		return nil, ErrNotBusinessDay
	}
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 4. Получаем все confirmed бронирования на эту дату
	filter := domain.ListBookingsFilter{
		Date:   &req.Date,
		Status: ptr.Ptr(domain.StatusConfirmed),
	}

	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Сетка слотов минус занятые времена
	slots := availableSlots(bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(slots), len(domain.AllSlots()), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
