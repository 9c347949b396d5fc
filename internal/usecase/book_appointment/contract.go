package book_appointment

import (
	"context"
	"time"

	"github.com/salonworks/booking-service/internal/domain"
)

// AppointmentRepository is the storage contract for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment, serviceIDs []int64) (*domain.Appointment, error)
}

// CatalogRepository resolves service names against a stylist's offerings.
type CatalogRepository interface {
	GetByNamesForStylist(ctx context.Context, stylistID int64, names []string) ([]*domain.Service, error)
}

// UserRepository is the storage contract for user accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
