package get_available_hours

import (
	"context"
	"fmt"

	"github.com/salonworks/booking-service/internal/domain"
	"github.com/salonworks/booking-service/pkg/types"
)

// UseCase returns the free hours of a stylist's working day.
// The result is the working grid minus hours occupied by valid appointments.
// Hours that have already passed on the requested day are not filtered out;
// the booking flow is where the past is rejected.
type UseCase struct {
	appointmentRepo AppointmentRepository
	workDay         domain.WorkDay
	logger          Logger
}

// NewUseCase creates a new available-hours use case.
func NewUseCase(appointmentRepo AppointmentRepository, workDay domain.WorkDay, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		workDay:         workDay,
		logger:          logger,
	}
}

// Execute computes the available hours for the stylist on the given day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	booked, err := uc.appointmentRepo.BookedHours(ctx, req.StylistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableHours: failed to get booked hours for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get booked hours: %v", ErrInternal, err)
	}

	available := freeHours(uc.workDay.Slots(), booked)

	uc.logger.Info("GetAvailableHours: stylist=%d, date=%s, %d of %d hours free",
		req.StylistID, req.Date.Format(domain.DateFormat), len(available), uc.workDay.EndHour-uc.workDay.StartHour)

	return &Response{
		StylistID:      req.StylistID,
		Date:           req.Date.Format(domain.DateFormat),
		AvailableHours: available,
	}, nil
}

// freeHours subtracts the booked hours from the grid, preserving grid order.
func freeHours(grid []types.TimeString, booked []types.TimeString) []string {
	taken := make(map[types.TimeString]bool, len(booked))
	for _, hour := range booked {
		taken[hour] = true
	}

	available := make([]string, 0, len(grid))
	for _, hour := range grid {
		if !taken[hour] {
			available = append(available, hour.String())
		}
	}
	return available
}
