package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/internal/events"
	bookingRepo "github.com/kamile-nails/booking-service/internal/infra/storage/booking"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	listErr   error
	createErr error

	created *domain.Booking
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.ListBookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = booking
	stored := *booking
	stored.CreatedAt = time.Date(2025, 8, 19, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	return &stored, nil
}

// fakeTxManager выполняет fn без транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakePublisher struct {
	published []events.Event
}

func (f *fakePublisher) Publish(ev events.Event) {
	f.published = append(f.published, ev)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// 2025-08-19, вторник
var testNow = time.Date(2025, 8, 19, 9, 30, 0, 0, time.UTC)

func newTestUseCase(repo *fakeBookingRepo, tx *fakeTxManager, pub *fakePublisher) *UseCase {
	uc := NewUseCase(repo, tx, pub, fakeLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, tx, pub)

	resp, err := uc.Execute(context.Background(), validTestRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Ana Silva", resp.ClientName)
	assert.Equal(t, "(11) 98765-4321", resp.ClientPhone)
	assert.Equal(t, "Gel polish", resp.Notes)
	assert.False(t, resp.CreatedAt.IsZero())

	// Вставка выполнена внутри транзакции
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)

	// Событие опубликовано после успешного создания
	require.Len(t, pub.published, 1)
	created, ok := pub.published[0].(events.BookingCreated)
	require.True(t, ok)
	assert.Equal(t, resp.ID, created.BookingID)
	assert.Equal(t, "2025-08-19", created.Date)
	assert.Equal(t, "10:00", created.Time)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{}, &fakePublisher{})

	req := &Request{Date: "bad", Time: "bad", ClientName: "X", ClientPhone: "1"}
	_, err := uc.Execute(context.Background(), req)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)
}

func TestExecute_WeekendRejected(t *testing.T) {
	tx := &fakeTxManager{}
	uc := newTestUseCase(&fakeBookingRepo{}, tx, &fakePublisher{})

	req := validTestRequest()
	req.Date = "2025-08-23" // суббота
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotBusinessDay)
	assert.Zero(t, tx.calls)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeTxManager{}, &fakePublisher{})

	req := validTestRequest()
	req.Date = "2025-08-18" // понедельник, раньше "сегодня"
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{Time: "10:00", Status: domain.StatusConfirmed},
		},
	}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, &fakeTxManager{}, pub)

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
	assert.Empty(t, pub.published)
}

func TestExecute_CancelledBookingDoesNotBlockSlot(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{Time: "10:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakePublisher{})

	resp, err := uc.Execute(context.Background(), validTestRequest())

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestExecute_ConcurrentInsertLosesRace(t *testing.T) {
	// Уникальный индекс сработал на вставке: конкурирующий запрос успел раньше
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{listErr: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeTxManager{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), validTestRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
