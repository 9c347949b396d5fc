package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/salonworks/booking-service/internal/domain"
	catalogRepo "github.com/salonworks/booking-service/internal/infra/storage/catalog"
	"github.com/salonworks/booking-service/internal/service/catalog/models"
)

// Service manages the service catalog and the set of services each
// stylist offers.
type Service struct {
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new catalog service.
func NewService(catalogRepo CatalogRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider swaps the time source, used in tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// CreateService adds a new service to the catalog.
func (s *Service) CreateService(ctx context.Context, name string, price float64) (*models.ServiceResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	created, err := s.catalogRepo.Create(ctx, &domain.Service{Name: name, Price: price})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceExists) {
			s.logger.Warn("CreateService: service %q already exists", name)
			return nil, ErrServiceExists
		}
		s.logger.Error("CreateService: repository error for %q: %v", name, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service %q id=%d", created.Name, created.ID)
	resp := models.FromDomainService(created)
	return &resp, nil
}

// ListCatalog returns the whole catalog ordered by name.
func (s *Service) ListCatalog(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListCatalog: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCatalog - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// StylistServices returns the services the stylist currently offers.
func (s *Service) StylistServices(ctx context.Context, stylistID int64) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListByStylist(ctx, stylistID)
	if err != nil {
		s.logger.Error("StylistServices: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: StylistServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// AddableServices returns the catalog services the stylist does not offer
// yet, so the caller can pick what to add.
func (s *Service) AddableServices(ctx context.Context, stylistID int64) (*models.ServiceListResponse, error) {
	services, err := s.catalogRepo.ListAddableForStylist(ctx, stylistID)
	if err != nil {
		s.logger.Error("AddableServices: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: AddableServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// OfferService links a catalog service to the stylist's offerings.
func (s *Service) OfferService(ctx context.Context, stylistID int64, serviceName string) error {
	svc, err := s.resolveByName(ctx, serviceName)
	if err != nil {
		return err
	}

	if err := s.catalogRepo.AddToStylist(ctx, stylistID, svc.ID); err != nil {
		if errors.Is(err, catalogRepo.ErrAlreadyOffered) {
			return ErrAlreadyOffered
		}
		s.logger.Error("OfferService: repository error for stylist=%d service=%q: %v", stylistID, serviceName, err)
		return fmt.Errorf("%w: OfferService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("OfferService: stylist=%d now offers %q", stylistID, svc.Name)
	return nil
}

// WithdrawService removes a service from the stylist's offerings.
// With cancelAppointments set, the stylist's future valid appointments that
// include the service are cancelled in the same transaction, before the
// unlink, so clients never hold a booking for a service nobody offers.
func (s *Service) WithdrawService(ctx context.Context, stylistID int64, serviceName string, cancelAppointments bool) (*models.WithdrawServiceResponse, error) {
	svc, err := s.resolveByName(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	var cancelled int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if cancelAppointments {
			now := s.timeProvider.Now()
			cancelled, err = s.catalogRepo.CancelAppointmentsWithService(ctx, stylistID, svc.ID, now)
			if err != nil {
				return fmt.Errorf("cancel appointments: %w", err)
			}
		}
		return s.catalogRepo.RemoveFromStylist(ctx, stylistID, svc.ID)
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotOffered) {
			return nil, ErrNotOffered
		}
		s.logger.Error("WithdrawService: transaction failed for stylist=%d service=%q: %v", stylistID, serviceName, err)
		return nil, fmt.Errorf("%w: WithdrawService - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("WithdrawService: stylist=%d withdrew %q, %d appointments cancelled", stylistID, svc.Name, cancelled)
	return &models.WithdrawServiceResponse{ServiceName: svc.Name, CancelledAppointments: cancelled}, nil
}

func (s *Service) resolveByName(ctx context.Context, name string) (*domain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	svc, err := s.catalogRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("resolveByName: repository error for %q: %v", name, err)
		return nil, fmt.Errorf("%w: resolveByName - repository error: %v", ErrInternal, err)
	}

	return svc, nil
}
