package dashboard_stats

import (
	"context"

	"github.com/kamile-nails/booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStatsResponse, error)
}

type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}
