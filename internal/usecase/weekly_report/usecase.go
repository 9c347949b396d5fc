package weekly_report

import (
	"context"
	"fmt"

	"github.com/salonworks/booking-service/internal/domain"
)

// UseCase builds the stylist's report for the current week: the appointment
// grid grouped by day plus the revenue of non-cancelled appointments.
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new weekly report use case.
func NewUseCase(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider swaps the time source, used in tests.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute builds the report. The grid and the revenue are separate queries,
// run inside one read-only transaction so they see the same data.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	from, to := weekBounds(uc.timeProvider.Now())

	var rows []domain.WeekEntry
	var revenue float64

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		rows, err = uc.appointmentRepo.WeekRows(txCtx, req.StylistID, from, to)
		if err != nil {
			return fmt.Errorf("week rows: %w", err)
		}

		revenue, err = uc.appointmentRepo.WeeklyRevenue(txCtx, req.StylistID, from, to)
		if err != nil {
			return fmt.Errorf("weekly revenue: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("WeeklyReport: failed for stylist=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	days := make(map[int][]Entry)
	for _, row := range rows {
		days[row.DayIndex] = append(days[row.DayIndex], Entry{
			Hour:       row.Hour.String(),
			ClientName: row.ClientName,
			Status:     string(row.Status),
			Services:   row.Services,
		})
	}

	uc.logger.Info("WeeklyReport: stylist=%d, week of %s, %d appointments, revenue=%.2f",
		req.StylistID, from.Format(domain.DateFormat), len(rows), revenue)

	return &Response{
		StylistID: req.StylistID,
		WeekStart: from.Format(domain.DateFormat),
		WeekEnd:   to.AddDate(0, 0, -1).Format(domain.DateFormat),
		Days:      days,
		Revenue:   revenue,
	}, nil
}
