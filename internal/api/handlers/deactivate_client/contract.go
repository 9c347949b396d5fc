package deactivate_client

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	DeactivateClient(ctx context.Context, clientID int64) (*models.DeactivateClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
