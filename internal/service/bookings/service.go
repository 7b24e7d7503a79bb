package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/internal/events"
	bookingRepo "github.com/kamile-nails/booking-service/internal/infra/storage/booking"
	"github.com/kamile-nails/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с опциональной фильтрацией по дате и статусу
// Результат отсортирован по (дата, время) по возрастанию
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Условное обновление в репозитории гарантирует единственный переход
// confirmed -> cancelled; повторная отмена возвращает ErrBookingNotFound
func (s *Service) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found or already cancelled", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)

	// Публикуем событие отмены (best-effort)
	s.publisher.Publish(events.BookingCancelled{
		BookingID:  booking.ID,
		Date:       booking.Date.Format(domain.DateFormat),
		Time:       booking.Time.String(),
		ClientName: booking.ClientName,
	})

	return models.FromDomainBooking(booking), nil
}

// DashboardStats возвращает счётчики confirmed бронирований:
// всего, на сегодня и за текущий календарный месяц
func (s *Service) DashboardStats(ctx context.Context) (*models.DashboardStatsResponse, error) {
	s.logger.Info("DashboardStats: generating report")

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	total, err := s.bookingRepo.CountConfirmed(ctx)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count total bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	todayCount, err := s.bookingRepo.CountConfirmedByDate(ctx, today)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count today bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	monthCount, err := s.bookingRepo.CountConfirmedInRange(ctx, monthStart, nextMonthStart)
	if err != nil {
		s.logger.Error("DashboardStats: failed to count month bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DashboardStats: total=%d, today=%d, month=%d", total, todayCount, monthCount)

	return &models.DashboardStatsResponse{
		TotalBookings: total,
		TodayBookings: todayCount,
		MonthBookings: monthCount,
		GeneratedAt:   now,
	}, nil
}
