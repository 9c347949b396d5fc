package create_service

import (
	"context"

	"github.com/salonworks/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, name string, price float64) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
