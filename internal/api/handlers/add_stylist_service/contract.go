package add_stylist_service

import "context"

type CatalogService interface {
	OfferService(ctx context.Context, stylistID int64, serviceName string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
