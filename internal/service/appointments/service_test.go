package appointments

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonworks/booking-service/internal/domain"
	appointmentRepo "github.com/salonworks/booking-service/internal/infra/storage/appointment"
	userRepo "github.com/salonworks/booking-service/internal/infra/storage/user"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	sweptBefore  time.Time
	sweptCount   int64
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) ValidForClient(_ context.Context, clientID int64) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.ClientID == clientID && a.Status == domain.StatusValid {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpcomingForStylist(_ context.Context, stylistID int64, now time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.StylistID == stylistID && a.Status == domain.StatusValid && a.ScheduledAt.After(now) {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.appointments[id]
	if !ok || appt.Status != domain.StatusValid {
		return appointmentRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeAppointmentRepo) CancelAllForClient(_ context.Context, clientID int64) (int64, error) {
	var n int64
	for _, a := range f.appointments {
		if a.ClientID == clientID && a.Status == domain.StatusValid {
			a.Status = domain.StatusCancelled
			n++
		}
	}
	return n, nil
}

func (f *fakeAppointmentRepo) SweepPastToCompleted(_ context.Context, now time.Time) (int64, error) {
	f.sweptBefore = now
	var n int64
	for _, a := range f.appointments {
		if a.Status == domain.StatusValid && a.ScheduledAt.Before(now) {
			a.Status = domain.StatusCompleted
			n++
		}
	}
	f.sweptCount = n
	return n, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[int64]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ListClients(_ context.Context) ([]*domain.User, error) {
	return f.listByRole(domain.RoleClient), nil
}

func (f *fakeUserRepo) ListStylists(_ context.Context) ([]*domain.User, error) {
	return f.listByRole(domain.RoleManager), nil
}

func (f *fakeUserRepo) listByRole(role domain.Role) []*domain.User {
	result := make([]*domain.User, 0)
	for _, u := range f.users {
		if u.Role == role && u.Active {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result
}

func (f *fakeUserRepo) Deactivate(_ context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Active = false
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(appts *fakeAppointmentRepo, users *fakeUserRepo, now time.Time) *Service {
	return NewService(appts, users, fakeTxManager{}, nopLogger{}).
		WithTimeProvider(fixedTime{now: now})
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("client cancels own appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo(&domain.Appointment{
			ID: 1, ClientID: 10, StylistID: 20,
			ScheduledAt: now.AddDate(0, 0, 1),
			Status:      domain.StatusValid,
		})
		svc := newTestService(repo, newFakeUserRepo(), now)

		err := svc.Cancel(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	})

	t.Run("manager cancels any appointment", func(t *testing.T) {
		repo := newFakeAppointmentRepo(&domain.Appointment{
			ID: 1, ClientID: 10, StylistID: 20,
			ScheduledAt: now.AddDate(0, 0, 1),
			Status:      domain.StatusValid,
		})
		users := newFakeUserRepo(&domain.User{ID: 20, Username: "anna", Role: domain.RoleManager, Active: true})
		svc := newTestService(repo, users, now)

		err := svc.Cancel(context.Background(), 1, 20)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	})

	t.Run("other client is denied", func(t *testing.T) {
		repo := newFakeAppointmentRepo(&domain.Appointment{
			ID: 1, ClientID: 10, StylistID: 20,
			ScheduledAt: now.AddDate(0, 0, 1),
			Status:      domain.StatusValid,
		})
		users := newFakeUserRepo(&domain.User{ID: 11, Username: "bob", Role: domain.RoleClient, Active: true})
		svc := newTestService(repo, users, now)

		err := svc.Cancel(context.Background(), 1, 11)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusValid, repo.appointments[1].Status)
	})

	t.Run("terminal statuses are immutable", func(t *testing.T) {
		for _, status := range []domain.AppointmentStatus{domain.StatusCancelled, domain.StatusCompleted} {
			repo := newFakeAppointmentRepo(&domain.Appointment{
				ID: 1, ClientID: 10, StylistID: 20,
				ScheduledAt: now.AddDate(0, 0, -1),
				Status:      status,
			})
			svc := newTestService(repo, newFakeUserRepo(), now)

			err := svc.Cancel(context.Background(), 1, 10)
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Equal(t, status, repo.appointments[1].Status)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(), newFakeUserRepo(), now)

		err := svc.Cancel(context.Background(), 99, 10)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestStylistUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo(
		&domain.Appointment{ID: 1, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(2 * time.Hour), Status: domain.StatusValid},
		&domain.Appointment{ID: 2, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(-2 * time.Hour), Status: domain.StatusValid},
		&domain.Appointment{ID: 3, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(3 * time.Hour), Status: domain.StatusCancelled},
		&domain.Appointment{ID: 4, ClientID: 10, StylistID: 21, ScheduledAt: now.Add(2 * time.Hour), Status: domain.StatusValid},
	)
	svc := newTestService(repo, newFakeUserRepo(), now)

	resp, err := svc.StylistUpcoming(context.Background(), 20)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}

func TestDirectories(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	users := newFakeUserRepo(
		&domain.User{ID: 10, Username: "carla", Role: domain.RoleClient, Active: true},
		&domain.User{ID: 11, Username: "bob", Role: domain.RoleClient, Active: true},
		&domain.User{ID: 12, Username: "alice", Role: domain.RoleClient, Active: false},
		&domain.User{ID: 20, Username: "anna", Role: domain.RoleManager, Active: true},
	)
	svc := newTestService(newFakeAppointmentRepo(), users, now)

	t.Run("clients lists active clients by username", func(t *testing.T) {
		resp, err := svc.ClientDirectory(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "bob", resp.Users[0].Username)
		assert.Equal(t, "carla", resp.Users[1].Username)
	})

	t.Run("stylists lists active stylists only", func(t *testing.T) {
		resp, err := svc.StylistDirectory(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, int64(20), resp.Users[0].ID)
	})
}

func TestDeactivateClient(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("cancels appointments and deactivates account", func(t *testing.T) {
		repo := newFakeAppointmentRepo(
			&domain.Appointment{ID: 1, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(time.Hour), Status: domain.StatusValid},
			&domain.Appointment{ID: 2, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(2 * time.Hour), Status: domain.StatusValid},
			&domain.Appointment{ID: 3, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(-time.Hour), Status: domain.StatusCompleted},
		)
		users := newFakeUserRepo(&domain.User{ID: 10, Username: "carla", Role: domain.RoleClient, Active: true})
		svc := newTestService(repo, users, now)

		resp, err := svc.DeactivateClient(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.CancelledAppointments)
		assert.False(t, users.users[10].Active)
		assert.Equal(t, domain.StatusCompleted, repo.appointments[3].Status)
	})

	t.Run("rejects non-client accounts", func(t *testing.T) {
		users := newFakeUserRepo(&domain.User{ID: 20, Username: "anna", Role: domain.RoleManager, Active: true})
		svc := newTestService(newFakeAppointmentRepo(), users, now)

		_, err := svc.DeactivateClient(context.Background(), 20)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newTestService(newFakeAppointmentRepo(), newFakeUserRepo(), now)

		_, err := svc.DeactivateClient(context.Background(), 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestSweepPastAppointments(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo(
		&domain.Appointment{ID: 1, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(-time.Hour), Status: domain.StatusValid},
		&domain.Appointment{ID: 2, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(time.Hour), Status: domain.StatusValid},
		&domain.Appointment{ID: 3, ClientID: 10, StylistID: 20, ScheduledAt: now.Add(-2 * time.Hour), Status: domain.StatusCancelled},
	)
	svc := newTestService(repo, newFakeUserRepo(), now)

	swept, err := svc.SweepPastAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)
	assert.Equal(t, now, repo.sweptBefore)
	assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
	assert.Equal(t, domain.StatusValid, repo.appointments[2].Status)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[3].Status)
}
