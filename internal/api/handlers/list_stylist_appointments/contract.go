package list_stylist_appointments

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	StylistUpcoming(ctx context.Context, stylistID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
