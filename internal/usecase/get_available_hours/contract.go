package get_available_hours

import (
	"context"
	"time"

	"github.com/salonworks/booking-service/pkg/types"
)

// AppointmentRepository is the storage contract for booked hours.
type AppointmentRepository interface {
	BookedHours(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error)
}

// Logger is the logging contract used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
