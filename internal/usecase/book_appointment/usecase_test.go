package book_appointment

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonworks/booking-service/internal/domain"
	appointmentRepo "github.com/salonworks/booking-service/internal/infra/storage/appointment"
	userRepo "github.com/salonworks/booking-service/internal/infra/storage/user"
	"github.com/salonworks/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	nextID    int64
	created   []*domain.Appointment
	createdTo [][]int64
	taken     map[string]bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1, taken: make(map[string]bool)}
}

func (f *fakeAppointmentRepo) slotKey(stylistID int64, at time.Time) string {
	return fmt.Sprintf("%d@%s", stylistID, at.Format(time.RFC3339))
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment, serviceIDs []int64) (*domain.Appointment, error) {
	key := f.slotKey(appt.StylistID, appt.ScheduledAt)
	if f.taken[key] {
		return nil, appointmentRepo.ErrSlotTaken
	}
	f.taken[key] = true

	appt.ID = f.nextID
	f.nextID++
	f.created = append(f.created, appt)
	f.createdTo = append(f.createdTo, serviceIDs)
	return appt, nil
}

type fakeCatalogRepo struct {
	offered map[string]*domain.Service
}

func (f *fakeCatalogRepo) GetByNamesForStylist(_ context.Context, _ int64, names []string) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, name := range names {
		if svc, ok := f.offered[name]; ok {
			result = append(result, svc)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
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

func defaultUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{
		10: {ID: 10, Username: "carla", Role: domain.RoleClient, Active: true},
		20: {ID: 20, Username: "anna", Role: domain.RoleManager, Active: true},
	}}
}

func defaultCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{offered: map[string]*domain.Service{
		"Haircut": {ID: 1, Name: "Haircut", Price: 25},
		"Color":   {ID: 2, Name: "Color", Price: 60},
	}}
}

func newTestUseCase(appts *fakeAppointmentRepo, services *fakeCatalogRepo, users *fakeUserRepo, now time.Time) *UseCase {
	return NewUseCase(appts, services, users, fakeTxManager{}, domain.DefaultWorkDay(), nopLogger{}).
		WithTimeProvider(fixedTime{now: now})
}

func validRequest(now time.Time) *Request {
	return &Request{
		RequesterID: 10,
		ClientID:    10,
		StylistID:   20,
		Date:        now.AddDate(0, 0, 1),
		Hour:        types.TimeString("10:00"),
		Services:    []string{"Haircut", "Color"},
	}
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("books a free slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		uc := newTestUseCase(repo, defaultCatalog(), defaultUsers(), now)

		resp, err := uc.Execute(context.Background(), validRequest(now))
		require.NoError(t, err)

		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "valid", resp.Status)
		assert.Equal(t, "10:00", resp.Hour)
		assert.Equal(t, "2026-03-03", resp.Date)
		assert.Equal(t, 85.0, resp.TotalPrice)
		require.Len(t, repo.created, 1)
		assert.Equal(t, []int64{1, 2}, repo.createdTo[0])
	})

	t.Run("rejects an occupied slot", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		uc := newTestUseCase(repo, defaultCatalog(), defaultUsers(), now)

		_, err := uc.Execute(context.Background(), validRequest(now))
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), validRequest(now))
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Len(t, repo.created, 1)
	})

	t.Run("manager books on a client's behalf", func(t *testing.T) {
		repo := newFakeAppointmentRepo()
		uc := newTestUseCase(repo, defaultCatalog(), defaultUsers(), now)

		req := validRequest(now)
		req.RequesterID = 20
		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ClientID)
	})

	t.Run("client may not book for another client", func(t *testing.T) {
		users := defaultUsers()
		users.users[11] = &domain.User{ID: 11, Username: "bob", Role: domain.RoleClient, Active: true}
		repo := newFakeAppointmentRepo()
		uc := newTestUseCase(repo, defaultCatalog(), users, now)

		req := validRequest(now)
		req.RequesterID = 11
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.created)
	})

	t.Run("rejects past moments", func(t *testing.T) {
		uc := newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), defaultUsers(), now)

		req := validRequest(now)
		req.Date = now.AddDate(0, 0, -1)
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)

		// Earlier hour on the current day is also in the past
		req = validRequest(now)
		req.Date = now
		req.Hour = types.TimeString("09:00")
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("accepts the exact current moment", func(t *testing.T) {
		exactNoon := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
		uc := newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), defaultUsers(), exactNoon)

		req := validRequest(exactNoon)
		req.Date = exactNoon
		req.Hour = types.TimeString("12:00")
		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("rejects hours off the working grid", func(t *testing.T) {
		uc := newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), defaultUsers(), now)

		for _, hour := range []string{"08:00", "18:00", "10:30"} {
			req := validRequest(now)
			req.Hour = types.TimeString(hour)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrHourNotBookable, "hour %s", hour)
		}
	})

	t.Run("rejects services the stylist does not offer", func(t *testing.T) {
		uc := newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), defaultUsers(), now)

		req := validRequest(now)
		req.Services = []string{"Haircut", "Perm"}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("rejects inactive or missing parties", func(t *testing.T) {
		users := defaultUsers()
		users.users[10].Active = false
		uc := newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), users, now)

		_, err := uc.Execute(context.Background(), validRequest(now))
		assert.ErrorIs(t, err, ErrClientNotFound)

		req := validRequest(now)
		req.StylistID = 99
		uc = newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), defaultUsers(), now)
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrStylistNotFound)
	})

	t.Run("rejects malformed requests", func(t *testing.T) {
		uc := newTestUseCase(newFakeAppointmentRepo(), defaultCatalog(), defaultUsers(), now)

		req := validRequest(now)
		req.Services = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validRequest(now)
		req.Hour = types.TimeString("25:00")
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validRequest(now)
		req.RequesterID = 0
		_, err = uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
