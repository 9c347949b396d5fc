package models

import "github.com/salonworks/booking-service/internal/domain"

// ServiceResponse is the external representation of one catalog service.
type ServiceResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceListResponse wraps a list of catalog services.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// WithdrawServiceResponse reports the result of a withdraw operation.
type WithdrawServiceResponse struct {
	ServiceName           string `json:"serviceName"`
	CancelledAppointments int64  `json:"cancelledAppointments"`
}

// FromDomainService converts a domain service into the response model.
func FromDomainService(svc *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:    svc.ID,
		Name:  svc.Name,
		Price: svc.Price,
	}
}

// FromDomainServices converts a slice of domain services.
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	items := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		items = append(items, FromDomainService(svc))
	}
	return &ServiceListResponse{Services: items, Total: len(items)}
}
