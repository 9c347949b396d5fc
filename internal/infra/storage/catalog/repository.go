package catalog

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
)

const pqUniqueViolation = "23505"

// Repository persists the service catalog and the stylist_services links.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new catalog repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new service into the catalog.
// A duplicate name is translated into ErrServiceExists.
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("name", "price").
		Values(svc.Name, svc.Price).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &createdAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrServiceExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time

	return svc, nil
}

// GetByName returns one service by its catalog name.
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&svc.ID, &svc.Name, &svc.Price, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan service: %v", ErrScanRow, err)
	}

	svc.CreatedAt = createdAt.Time

	return &svc, nil
}

// ListAll returns the full catalog ordered by name.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// ListByStylist returns the services a stylist currently offers, ordered by name.
func (r *Repository) ListByStylist(ctx context.Context, stylistID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.name", "s.price", "s.created_at").
		From("services s").
		Join("stylist_services ss ON ss.service_id = s.id").
		Where(squirrel.Eq{"ss.stylist_id": stylistID}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// ListAddableForStylist returns the catalog services the stylist does not
// offer yet, ordered by name. Feeds the add-service picker.
func (r *Repository) ListAddableForStylist(ctx context.Context, stylistID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().
		Where(squirrel.Expr(
			"id NOT IN (SELECT service_id FROM stylist_services WHERE stylist_id = ?)",
			stylistID,
		)).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAddableForStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddableForStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// GetByNamesForStylist resolves the given service names against the stylist's
// offerings. Names the stylist does not offer are simply absent from the
// result; callers compare lengths to detect them.
func (r *Repository) GetByNamesForStylist(ctx context.Context, stylistID int64, names []string) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("s.id", "s.name", "s.price", "s.created_at").
		From("services s").
		Join("stylist_services ss ON ss.service_id = s.id").
		Where(squirrel.Eq{"ss.stylist_id": stylistID}).
		Where(squirrel.Eq{"s.name": names}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNamesForStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNamesForStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// AddToStylist links a service to a stylist's offerings.
func (r *Repository) AddToStylist(ctx context.Context, stylistID, serviceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("stylist_services").
		Columns("stylist_id", "service_id").
		Values(stylistID, serviceID).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddToStylist - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrAlreadyOffered
		}
		return fmt.Errorf("%w: AddToStylist - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveFromStylist unlinks a service from a stylist's offerings.
func (r *Repository) RemoveFromStylist(ctx context.Context, stylistID, serviceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("stylist_services").
		Where(squirrel.Eq{"stylist_id": stylistID, "service_id": serviceID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveFromStylist - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveFromStylist - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveFromStylist - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotOffered
	}

	return nil
}

// CancelAppointmentsWithService cancels the stylist's future valid
// appointments that include the given service, and returns how many
// appointments were affected. Used when a stylist withdraws a service.
func (r *Repository) CancelAppointmentsWithService(ctx context.Context, stylistID, serviceID int64, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"stylist_id": stylistID, "status": domain.StatusValid}).
		Where(squirrel.Gt{"scheduled_at": now}).
		Where(squirrel.Expr(
			"id IN (SELECT appointment_id FROM appointment_services WHERE service_id = ?)",
			serviceID,
		)).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelAppointmentsWithService - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelAppointmentsWithService - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelAppointmentsWithService - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func serviceColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "price", "created_at").From("services")
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		var svc domain.Service
		var createdAt sql.NullTime

		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}

		svc.CreatedAt = createdAt.Time

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
