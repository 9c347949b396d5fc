package list_client_appointments

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	ClientAppointments(ctx context.Context, clientID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
