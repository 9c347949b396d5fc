package list_stylists

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	StylistDirectory(ctx context.Context) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
