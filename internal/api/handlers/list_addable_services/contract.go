package list_addable_services

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	AddableServices(ctx context.Context, stylistID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
