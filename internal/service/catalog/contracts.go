package catalog

import (
	"context"
	"time"

	"github.com/salonworks/booking-service/internal/domain"
)

// CatalogRepository is the storage contract for the service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
	ListAll(ctx context.Context) ([]*domain.Service, error)
	ListByStylist(ctx context.Context, stylistID int64) ([]*domain.Service, error)
	ListAddableForStylist(ctx context.Context, stylistID int64) ([]*domain.Service, error)
	AddToStylist(ctx context.Context, stylistID, serviceID int64) error
	RemoveFromStylist(ctx context.Context, stylistID, serviceID int64) error
	CancelAppointmentsWithService(ctx context.Context, stylistID, serviceID int64, now time.Time) (int64, error)
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
