package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/salonworks/booking-service/internal/domain"
	"github.com/salonworks/booking-service/pkg/dbmetrics"
	"github.com/salonworks/booking-service/pkg/psqlbuilder"
	"github.com/salonworks/booking-service/pkg/types"
)

// pq error code for unique_violation, raised by the partial unique index
// on (stylist_id, scheduled_at) WHERE status = 'valid'.
const pqUniqueViolation = "23505"

// Repository persists appointments and their service links.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts an appointment together with its appointment_services links.
// Both inserts must run atomically, so callers are expected to invoke Create
// inside a transaction (via txmanager). A unique-index violation on the
// stylist slot is translated into ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment, serviceIDs []int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"stylist_id",
			"scheduled_at",
			"status",
		).
		Values(
			appt.ClientID,
			appt.StylistID,
			appt.ScheduledAt,
			appt.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	if len(serviceIDs) > 0 {
		linkBuilder := psqlbuilder.Insert("appointment_services").
			Columns("appointment_id", "service_id")
		for _, serviceID := range serviceIDs {
			linkBuilder = linkBuilder.Values(appt.ID, serviceID)
		}

		query, args, err = linkBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build links query: %v", ErrBuildQuery, err)
		}

		if _, err = executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute links insert: %v", ErrExecQuery, err)
		}
	}

	return appt, nil
}

// BookedHours returns the hours already taken for a stylist on the given day.
// Only valid appointments occupy a slot; cancelled and completed ones do not.
func (r *Repository) BookedHours(ctx context.Context, stylistID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select("scheduled_at").
		From("appointments").
		Where(squirrel.Eq{"stylist_id": stylistID, "status": domain.StatusValid}).
		Where(squirrel.GtOrEq{"scheduled_at": dayStart}).
		Where(squirrel.Lt{"scheduled_at": dayEnd}).
		OrderBy("scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BookedHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BookedHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]types.TimeString, 0)
	for rows.Next() {
		var scheduledAt time.Time
		if err := rows.Scan(&scheduledAt); err != nil {
			return nil, fmt.Errorf("%w: BookedHours - scan scheduled_at: %v", ErrScanRow, err)
		}
		hours = append(hours, types.NewTimeString(scheduledAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BookedHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// ValidForClient returns the client's valid appointments ordered by start time.
func (r *Repository) ValidForClient(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := appointmentColumns().
		Where(squirrel.Eq{"client_id": clientID, "status": domain.StatusValid}).
		OrderBy("scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ValidForClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ValidForClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpcomingForStylist returns the stylist's valid appointments strictly after now.
func (r *Repository) UpcomingForStylist(ctx context.Context, stylistID int64, now time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := appointmentColumns().
		Where(squirrel.Eq{"stylist_id": stylistID, "status": domain.StatusValid}).
		Where(squirrel.Gt{"scheduled_at": now}).
		OrderBy("scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpcomingForStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: UpcomingForStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByID returns one appointment by its identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := appointmentColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.StylistID,
		&appt.ScheduledAt,
		&appt.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// UpdateStatus moves a valid appointment into the given status.
// Rows already in a terminal state are left untouched, which keeps
// cancelled and completed immutable at the storage level.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusValid}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CancelAllForClient cancels every valid appointment of the client and
// returns how many rows were affected.
func (r *Repository) CancelAllForClient(ctx context.Context, clientID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"client_id": clientID, "status": domain.StatusValid}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelAllForClient - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelAllForClient - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelAllForClient - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// SweepPastToCompleted marks every valid appointment scheduled before now
// as completed and returns how many rows were affected.
func (r *Repository) SweepPastToCompleted(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.StatusValid}).
		Where(squirrel.Lt{"scheduled_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SweepPastToCompleted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SweepPastToCompleted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SweepPastToCompleted - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// WeekRows returns the stylist's appointments inside [from, to) together with
// the client name and a comma-joined, name-ordered list of booked services.
// Rows come back ordered by start time, which within a Monday-start week means
// day first, then hour.
func (r *Repository) WeekRows(ctx context.Context, stylistID int64, from, to time.Time) ([]domain.WeekEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"a.scheduled_at",
		"u.username",
		"a.status",
		"string_agg(s.name, ', ' ORDER BY s.name) AS services",
	).
		From("appointments a").
		Join("users u ON u.id = a.client_id").
		Join("appointment_services aps ON aps.appointment_id = a.id").
		Join("services s ON s.id = aps.service_id").
		Where(squirrel.Eq{"a.stylist_id": stylistID}).
		Where(squirrel.GtOrEq{"a.scheduled_at": from}).
		Where(squirrel.Lt{"a.scheduled_at": to}).
		GroupBy("a.id", "a.scheduled_at", "u.username", "a.status").
		OrderBy("a.scheduled_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: WeekRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: WeekRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.WeekEntry, 0)
	for rows.Next() {
		var scheduledAt time.Time
		var entry domain.WeekEntry

		if err := rows.Scan(&scheduledAt, &entry.ClientName, &entry.Status, &entry.Services); err != nil {
			return nil, fmt.Errorf("%w: WeekRows - scan row: %v", ErrScanRow, err)
		}

		// time.Weekday starts the week on Sunday; shift so Monday is 0.
		entry.DayIndex = (int(scheduledAt.Weekday()) + 6) % 7
		entry.Hour = types.NewTimeString(scheduledAt)

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: WeekRows - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// WeeklyRevenue sums the prices of all services booked on the stylist's
// non-cancelled appointments inside [from, to).
func (r *Repository) WeeklyRevenue(ctx context.Context, stylistID int64, from, to time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(s.price), 0)").
		From("appointments a").
		Join("appointment_services aps ON aps.appointment_id = a.id").
		Join("services s ON s.id = aps.service_id").
		Where(squirrel.Eq{"a.stylist_id": stylistID}).
		Where(squirrel.NotEq{"a.status": domain.StatusCancelled}).
		Where(squirrel.GtOrEq{"a.scheduled_at": from}).
		Where(squirrel.Lt{"a.scheduled_at": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: WeeklyRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: WeeklyRevenue - scan revenue: %v", ErrScanRow, err)
	}

	return revenue, nil
}

// appointmentColumns is the shared select base for full appointment rows.
func appointmentColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"client_id",
		"stylist_id",
		"scheduled_at",
		"status",
		"created_at",
		"updated_at",
	).From("appointments")
}

// scanAppointments scans query results into a slice of appointments.
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.ClientID,
			&appt.StylistID,
			&appt.ScheduledAt,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
