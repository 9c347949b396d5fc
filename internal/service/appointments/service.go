package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonworks/booking-service/internal/domain"
	appointmentRepo "github.com/salonworks/booking-service/internal/infra/storage/appointment"
	userRepo "github.com/salonworks/booking-service/internal/infra/storage/user"
	"github.com/salonworks/booking-service/internal/service/appointments/models"
)

// Service handles appointment lifecycle operations: cancellation, listings,
// client deactivation and the sweep that completes past appointments.
type Service struct {
	appointmentRepo AppointmentRepository
	userRepo        UserRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a new appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider swaps the time source, used in tests.
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Cancel cancels a valid appointment.
// Clients may cancel only their own appointments; managers may cancel any.
// Cancelled and completed appointments stay as they are.
func (s *Service) Cancel(ctx context.Context, appointmentID, requesterID int64) error {
	s.logger.Info("Cancel: appointment id=%d requested by user=%d", appointmentID, requesterID)

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkCancelAccess(ctx, appt, requesterID); err != nil {
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d is in status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			// The appointment moved to a terminal state between the read and the update.
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to update appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", appointmentID)
	return nil
}

// ClientAppointments returns the client's valid appointments ordered by start time.
func (s *Service) ClientAppointments(ctx context.Context, clientID int64) (*models.AppointmentListResponse, error) {
	appts, err := s.appointmentRepo.ValidForClient(ctx, clientID)
	if err != nil {
		s.logger.Error("ClientAppointments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: ClientAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(appts), nil
}

// StylistUpcoming returns the stylist's valid future appointments.
func (s *Service) StylistUpcoming(ctx context.Context, stylistID int64) (*models.AppointmentListResponse, error) {
	now := s.timeProvider.Now()

	appts, err := s.appointmentRepo.UpcomingForStylist(ctx, stylistID, now)
	if err != nil {
		s.logger.Error("StylistUpcoming: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: StylistUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(appts), nil
}

// ClientDirectory returns the active client accounts ordered by username.
// Managers use it to pick the client they book for.
func (s *Service) ClientDirectory(ctx context.Context) (*models.UserListResponse, error) {
	clients, err := s.userRepo.ListClients(ctx)
	if err != nil {
		s.logger.Error("ClientDirectory: repository error: %v", err)
		return nil, fmt.Errorf("%w: ClientDirectory - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUsers(clients), nil
}

// StylistDirectory returns the active stylist accounts ordered by username.
func (s *Service) StylistDirectory(ctx context.Context) (*models.UserListResponse, error) {
	stylists, err := s.userRepo.ListStylists(ctx)
	if err != nil {
		s.logger.Error("StylistDirectory: repository error: %v", err)
		return nil, fmt.Errorf("%w: StylistDirectory - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUsers(stylists), nil
}

// DeactivateClient cancels all of the client's valid appointments and marks
// the account inactive. Both writes happen in one transaction.
func (s *Service) DeactivateClient(ctx context.Context, clientID int64) (*models.DeactivateClientResponse, error) {
	s.logger.Info("DeactivateClient: deactivating client=%d", clientID)

	u, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("DeactivateClient: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: DeactivateClient - repository error: %v", ErrInternal, err)
	}
	if u.Role != domain.RoleClient {
		return nil, ErrAccessDenied
	}

	var cancelled int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		cancelled, err = s.appointmentRepo.CancelAllForClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("cancel appointments: %w", err)
		}
		if err := s.userRepo.Deactivate(ctx, clientID); err != nil {
			return fmt.Errorf("deactivate user: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("DeactivateClient: transaction failed for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: DeactivateClient - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateClient: client=%d deactivated, %d appointments cancelled", clientID, cancelled)
	return &models.DeactivateClientResponse{ClientID: clientID, CancelledAppointments: cancelled}, nil
}

// SweepPastAppointments marks every valid appointment scheduled before the
// current moment as completed. Runs once at startup and then on a schedule.
func (s *Service) SweepPastAppointments(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	swept, err := s.appointmentRepo.SweepPastToCompleted(ctx, now)
	if err != nil {
		s.logger.Error("SweepPastAppointments: repository error: %v", err)
		return 0, fmt.Errorf("%w: SweepPastAppointments - repository error: %v", ErrInternal, err)
	}

	if swept > 0 {
		s.logger.Info("SweepPastAppointments: %d appointments marked completed", swept)
	}
	return swept, nil
}

// checkCancelAccess allows the owning client or any manager.
func (s *Service) checkCancelAccess(ctx context.Context, appt *domain.Appointment, requesterID int64) error {
	if appt.ClientID == requesterID {
		return nil
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkCancelAccess - repository error: %v", ErrInternal, err)
	}

	if requester.Role != domain.RoleManager {
		s.logger.Warn("checkCancelAccess: user=%d denied for appointment id=%d", requesterID, appt.ID)
		return ErrAccessDenied
	}

	return nil
}
