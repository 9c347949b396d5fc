package weekly_report

import (
	"context"
	"time"

	"github.com/salonworks/booking-service/internal/domain"
)

// AppointmentRepository is the storage contract for the weekly views.
type AppointmentRepository interface {
	WeekRows(ctx context.Context, stylistID int64, from, to time.Time) ([]domain.WeekEntry, error)
	WeeklyRevenue(ctx context.Context, stylistID int64, from, to time.Time) (float64, error)
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider supplies the current time, injectable for tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
