package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamile-nails/booking-service/internal/domain"
	"github.com/kamile-nails/booking-service/pkg/types"
)

type fakeLogger struct{}

func (fakeLogger) Info(format string, v ...interface{})  {}
func (fakeLogger) Warn(format string, v ...interface{})  {}
func (fakeLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFilter domain.ListBookingsFilter
}

func (f *fakeBookingRepo) List(ctx context.Context, filter domain.ListBookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

// 2025-08-19, вторник
var testDate = time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	uc := NewUseCase(repo, fakeLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testDate}
	return uc
}

func TestExecute_FullGridWhenNoBookings(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, domain.AllSlots(), resp.Slots)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.gotFilter.Status)
}

func TestExecute_ExcludesBookedSlots(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{Time: "10:00", Status: domain.StatusConfirmed},
			{Time: "14:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 8)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))

	// Порядок остаётся возрастающим
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}
}

func TestExecute_CancelledBookingsDoNotBlockSlots(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{Time: "10:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("10:00"))
	assert.Len(t, resp.Slots, 10)
}

func TestExecute_WeekendRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	// 2025-08-23, суббота
	saturday := time.Date(2025, 8, 23, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{Date: saturday})

	assert.ErrorIs(t, err, ErrNotBusinessDay)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	// 2025-08-18 понедельник, но раньше "сегодня"
	yesterday := testDate.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), &Request{Date: yesterday})

	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayAllowed(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 10)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{Date: testDate})

	assert.ErrorIs(t, err, ErrInternal)
}
