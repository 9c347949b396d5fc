package remove_stylist_service

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	WithdrawService(ctx context.Context, stylistID int64, serviceName string, cancelAppointments bool) (*models.WithdrawServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
