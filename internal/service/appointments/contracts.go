package appointments

import (
	"context"
	"time"

	"github.com/salonworks/booking-service/internal/domain"
)

// AppointmentRepository is the storage contract for appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ValidForClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	UpcomingForStylist(ctx context.Context, stylistID int64, now time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	CancelAllForClient(ctx context.Context, clientID int64) (int64, error)
	SweepPastToCompleted(ctx context.Context, now time.Time) (int64, error)
}

// UserRepository is the storage contract for user accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListClients(ctx context.Context) ([]*domain.User, error)
	ListStylists(ctx context.Context) ([]*domain.User, error)
	Deactivate(ctx context.Context, id int64) error
}

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging contract used by the service.
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
