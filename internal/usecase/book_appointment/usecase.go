package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonworks/booking-service/internal/domain"
	appointmentRepo "github.com/salonworks/booking-service/internal/infra/storage/appointment"
	userRepo "github.com/salonworks/booking-service/internal/infra/storage/user"
)

// UseCase books an appointment for a client with a stylist.
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	userRepo        UserRepository
	txManager       TransactionManager
	workDay         domain.WorkDay
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new booking use case.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	workDay domain.WorkDay,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		workDay:         workDay,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider swaps the time source, used in tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute books an appointment.
// The insert runs in a serializable transaction; the partial unique index on
// the stylist slot makes concurrent bookings of the same hour fail cleanly
// with ErrSlotTaken instead of double-booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: client=%d, stylist=%d, date=%s, hour=%s, services=%d",
		req.ClientID, req.StylistID, req.Date.Format(domain.DateFormat), req.Hour, len(req.Services))

	// 1. Validate the request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. The hour must be on the working grid
	if !uc.workDay.Contains(req.Hour) {
		uc.logger.Warn("BookAppointment: hour %s is outside the working grid", req.Hour)
		return nil, ErrHourNotBookable
	}

	// 3. Combine date and hour, reject moments in the past.
	// Booking exactly at the current instant is still accepted.
	instant, err := req.Hour.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hour: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()
	if err := validateMoment(instant, now); err != nil {
		uc.logger.Warn("BookAppointment: moment %s is in the past", instant)
		return nil, err
	}

	// 4. Booking for someone else is a manager action
	if err := uc.checkBookingAccess(ctx, req); err != nil {
		return nil, err
	}

	// 5. Both parties must exist, be active and hold the right role
	if err := uc.checkParty(ctx, req.ClientID, domain.RoleClient, ErrClientNotFound); err != nil {
		return nil, err
	}
	if err := uc.checkParty(ctx, req.StylistID, domain.RoleManager, ErrStylistNotFound); err != nil {
		return nil, err
	}

	requested := normalizeServices(req.Services)

	var created *domain.Appointment
	var services []*domain.Service

	// 6. Resolve services and insert in one serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		services, err = uc.catalogRepo.GetByNamesForStylist(txCtx, req.StylistID, requested)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to resolve services: %v", err)
			return fmt.Errorf("%w: failed to resolve services: %v", ErrInternal, err)
		}

		if missing := missingServices(requested, services); len(missing) > 0 {
			uc.logger.Warn("BookAppointment: stylist=%d does not offer %v", req.StylistID, missing)
			return fmt.Errorf("%w: %s", ErrServiceNotFound, missing[0])
		}

		serviceIDs := make([]int64, 0, len(services))
		for _, svc := range services {
			serviceIDs = append(serviceIDs, svc.ID)
		}

		appt := &domain.Appointment{
			ClientID:    req.ClientID,
			StylistID:   req.StylistID,
			ScheduledAt: instant,
			Status:      domain.StatusValid,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt, serviceIDs)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: slot %s already taken for stylist=%d", req.Hour, req.StylistID)
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: created appointment id=%d", created.ID)

	booked := make([]BookedService, 0, len(services))
	var total float64
	for _, svc := range services {
		booked = append(booked, BookedService{Name: svc.Name, Price: svc.Price})
		total += svc.Price
	}

	return &Response{
		ID:         created.ID,
		ClientID:   created.ClientID,
		StylistID:  created.StylistID,
		Date:       created.ScheduledAt.Format(domain.DateFormat),
		Hour:       created.Hour().String(),
		Status:     string(created.Status),
		Services:   booked,
		TotalPrice: total,
	}, nil
}

// checkBookingAccess lets clients book for themselves; only an active
// manager may name another client in the request.
func (uc *UseCase) checkBookingAccess(ctx context.Context, req *Request) error {
	if req.RequesterID == req.ClientID {
		return nil
	}

	requester, err := uc.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: requester id=%d not found", req.RequesterID)
			return ErrAccessDenied
		}
		uc.logger.Error("BookAppointment: failed to get requester id=%d: %v", req.RequesterID, err)
		return fmt.Errorf("%w: failed to get requester: %v", ErrInternal, err)
	}

	if !requester.Active || requester.Role != domain.RoleManager {
		uc.logger.Warn("BookAppointment: user id=%d may not book for client=%d", req.RequesterID, req.ClientID)
		return ErrAccessDenied
	}

	return nil
}

// checkParty verifies that a user exists, is active and holds the given role.
func (uc *UseCase) checkParty(ctx context.Context, id int64, role domain.Role, notFound error) error {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: user id=%d not found", id)
			return notFound
		}
		uc.logger.Error("BookAppointment: failed to get user id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !u.Active || u.Role != role {
		uc.logger.Warn("BookAppointment: user id=%d is not an active %s", id, role)
		return notFound
	}

	return nil
}
