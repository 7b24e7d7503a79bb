package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/internal/events"
	bookingRepo "github.com/kamile-nails/booking-service/internal/infra/storage/booking"
	"github.com/kamile-nails/booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и вставка выполняются в сериализуемой транзакции;
// частичный уникальный индекс в БД закрывает остаточную гонку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, client=%s", req.Date, req.Time, req.ClientName)

	// 1. Валидация формы запроса (все нарушения собираются разом)
	validated, fieldErrs := validateRequest(req)
	if fieldErrs != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", fieldErrs)
		return nil, fieldErrs
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Бизнес-правила даты: рабочий день и не в прошлом
	if !domain.IsBusinessDay(validated.date) {
		uc.logger.Warn("CreateBooking: %s is not a business day", req.Date)
		return nil, ErrNotBusinessDay
	}
	if isDateInPast(validated.date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, ErrDateInPast
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Проверка конфликта и вставка в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем confirmed бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ListBookingsFilter{
			Date:   &validated.date,
			Status: ptr.Ptr(domain.StatusConfirmed),
		}

		bookings, err := uc.bookingRepo.List(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Проверяем, свободен ли слот
		if isSlotBooked(validated.startTime, bookings) {
			uc.logger.Warn("CreateBooking: slot %s %s is already booked", req.Date, req.Time)
			return ErrSlotTaken
		}

		// 4.3. Создаем бронирование
		booking := &domain.Booking{
			ID:          uuid.NewString(),
			Date:        validated.date,
			Time:        validated.startTime,
			ClientName:  validated.clientName,
			ClientPhone: req.ClientPhone,
			Notes:       req.Notes,
			Status:      domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс сработал: конкурирующий запрос успел раньше
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s taken by concurrent request", req.Date, req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 5. Публикуем событие после фиксации транзакции (best-effort)
	uc.publisher.Publish(events.BookingCreated{
		BookingID:   result.ID,
		Date:        result.Date.Format(domain.DateFormat),
		Time:        result.Time.String(),
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
	})

	// Конвертируем в response
	return &Response{
		ID:          result.ID,
		Date:        result.Date,
		Time:        result.Time,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		Notes:       result.Notes,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
