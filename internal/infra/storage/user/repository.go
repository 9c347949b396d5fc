package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonworks/booking-service/internal/domain"
	"github.com/salonworks/booking-service/pkg/dbmetrics"
	"github.com/salonworks/booking-service/pkg/psqlbuilder"
)

// Repository reads and updates user accounts.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new user repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID returns one user by its identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := userColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.Role, &u.Active)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return &u, nil
}

// ListClients returns all active client accounts ordered by username.
func (r *Repository) ListClients(ctx context.Context) ([]*domain.User, error) {
	return r.listByRole(ctx, domain.RoleClient)
}

// ListStylists returns all active manager accounts ordered by username.
func (r *Repository) ListStylists(ctx context.Context) ([]*domain.User, error) {
	return r.listByRole(ctx, domain.RoleManager)
}

func (r *Repository) listByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := userColumns().
		Where(squirrel.Eq{"role": role, "active": true}).
		OrderBy("username ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: listByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Role, &u.Active); err != nil {
			return nil, fmt.Errorf("%w: listByRole - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listByRole - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// Deactivate marks a user account inactive.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func userColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "username", "role", "active").From("users")
}
