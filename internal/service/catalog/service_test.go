package catalog

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonworks/booking-service/internal/domain"
	catalogRepo "github.com/salonworks/booking-service/internal/infra/storage/catalog"
)

type offering struct {
	stylistID int64
	serviceID int64
}

type fakeCatalogRepo struct {
	services  map[int64]*domain.Service
	offerings map[offering]bool
	nextID    int64

	cancelledStylist int64
	cancelledService int64
	cancelledBefore  time.Time
	cancelCount      int64
}

func newFakeCatalogRepo(services ...*domain.Service) *fakeCatalogRepo {
	repo := &fakeCatalogRepo{
		services:  make(map[int64]*domain.Service),
		offerings: make(map[offering]bool),
		nextID:    1,
	}
	for _, svc := range services {
		repo.services[svc.ID] = svc
		if svc.ID >= repo.nextID {
			repo.nextID = svc.ID + 1
		}
	}
	return repo
}

func (f *fakeCatalogRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	for _, existing := range f.services {
		if existing.Name == svc.Name {
			return nil, catalogRepo.ErrServiceExists
		}
	}
	svc.ID = f.nextID
	f.nextID++
	f.services[svc.ID] = svc
	return svc, nil
}

func (f *fakeCatalogRepo) GetByName(_ context.Context, name string) (*domain.Service, error) {
	for _, svc := range f.services {
		if svc.Name == name {
			return svc, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (f *fakeCatalogRepo) ListAll(_ context.Context) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0, len(f.services))
	for _, svc := range f.services {
		result = append(result, svc)
	}
	return result, nil
}

func (f *fakeCatalogRepo) ListByStylist(_ context.Context, stylistID int64) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for key := range f.offerings {
		if key.stylistID == stylistID {
			result = append(result, f.services[key.serviceID])
		}
	}
	return result, nil
}

func (f *fakeCatalogRepo) ListAddableForStylist(_ context.Context, stylistID int64) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for _, svc := range f.services {
		if !f.offerings[offering{stylistID: stylistID, serviceID: svc.ID}] {
			result = append(result, svc)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *fakeCatalogRepo) AddToStylist(_ context.Context, stylistID, serviceID int64) error {
	key := offering{stylistID: stylistID, serviceID: serviceID}
	if f.offerings[key] {
		return catalogRepo.ErrAlreadyOffered
	}
	f.offerings[key] = true
	return nil
}

func (f *fakeCatalogRepo) RemoveFromStylist(_ context.Context, stylistID, serviceID int64) error {
	key := offering{stylistID: stylistID, serviceID: serviceID}
	if !f.offerings[key] {
		return catalogRepo.ErrNotOffered
	}
	delete(f.offerings, key)
	return nil
}

func (f *fakeCatalogRepo) CancelAppointmentsWithService(_ context.Context, stylistID, serviceID int64, now time.Time) (int64, error) {
	f.cancelledStylist = stylistID
	f.cancelledService = serviceID
	f.cancelledBefore = now
	return f.cancelCount, nil
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

func newTestService(repo *fakeCatalogRepo, now time.Time) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{}).
		WithTimeProvider(fixedTime{now: now})
}

func TestCreateService(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("creates a new service", func(t *testing.T) {
		svc := newTestService(newFakeCatalogRepo(), now)

		resp, err := svc.CreateService(context.Background(), "Haircut", 25)
		require.NoError(t, err)
		assert.Equal(t, "Haircut", resp.Name)
		assert.Equal(t, 25.0, resp.Price)
		assert.NotZero(t, resp.ID)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		svc := newTestService(repo, now)

		_, err := svc.CreateService(context.Background(), "Haircut", 30)
		assert.ErrorIs(t, err, ErrServiceExists)
	})

	t.Run("accepts a free service", func(t *testing.T) {
		svc := newTestService(newFakeCatalogRepo(), now)

		resp, err := svc.CreateService(context.Background(), "Consultation", 0)
		require.NoError(t, err)
		assert.Zero(t, resp.Price)
	})

	t.Run("rejects blank names and negative prices", func(t *testing.T) {
		svc := newTestService(newFakeCatalogRepo(), now)

		_, err := svc.CreateService(context.Background(), "  ", 25)
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.CreateService(context.Background(), "Haircut", -5)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAddableServices(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("lists only services the stylist does not offer", func(t *testing.T) {
		repo := newFakeCatalogRepo(
			&domain.Service{ID: 1, Name: "Color", Price: 60},
			&domain.Service{ID: 2, Name: "Haircut", Price: 25},
			&domain.Service{ID: 3, Name: "Perm", Price: 40},
		)
		repo.offerings[offering{stylistID: 20, serviceID: 2}] = true
		svc := newTestService(repo, now)

		resp, err := svc.AddableServices(context.Background(), 20)
		require.NoError(t, err)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, "Color", resp.Services[0].Name)
		assert.Equal(t, "Perm", resp.Services[1].Name)
	})

	t.Run("everything is addable for a new stylist", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		svc := newTestService(repo, now)

		resp, err := svc.AddableServices(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
	})
}

func TestOfferService(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("links an existing service", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		svc := newTestService(repo, now)

		require.NoError(t, svc.OfferService(context.Background(), 20, "Haircut"))
		assert.True(t, repo.offerings[offering{stylistID: 20, serviceID: 1}])
	})

	t.Run("unknown service", func(t *testing.T) {
		svc := newTestService(newFakeCatalogRepo(), now)

		err := svc.OfferService(context.Background(), 20, "Perm")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("already offered", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		repo.offerings[offering{stylistID: 20, serviceID: 1}] = true
		svc := newTestService(repo, now)

		err := svc.OfferService(context.Background(), 20, "Haircut")
		assert.ErrorIs(t, err, ErrAlreadyOffered)
	})
}

func TestWithdrawService(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("unlinks without touching appointments", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		repo.offerings[offering{stylistID: 20, serviceID: 1}] = true
		svc := newTestService(repo, now)

		resp, err := svc.WithdrawService(context.Background(), 20, "Haircut", false)
		require.NoError(t, err)
		assert.Zero(t, resp.CancelledAppointments)
		assert.False(t, repo.offerings[offering{stylistID: 20, serviceID: 1}])
		assert.Zero(t, repo.cancelledService)
	})

	t.Run("cancels future appointments when asked", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		repo.offerings[offering{stylistID: 20, serviceID: 1}] = true
		repo.cancelCount = 3
		svc := newTestService(repo, now)

		resp, err := svc.WithdrawService(context.Background(), 20, "Haircut", true)
		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.CancelledAppointments)
		assert.Equal(t, int64(20), repo.cancelledStylist)
		assert.Equal(t, int64(1), repo.cancelledService)
		assert.Equal(t, now, repo.cancelledBefore)
		assert.False(t, repo.offerings[offering{stylistID: 20, serviceID: 1}])
	})

	t.Run("not offered", func(t *testing.T) {
		repo := newFakeCatalogRepo(&domain.Service{ID: 1, Name: "Haircut", Price: 25})
		svc := newTestService(repo, now)

		_, err := svc.WithdrawService(context.Background(), 20, "Haircut", false)
		assert.ErrorIs(t, err, ErrNotOffered)
	})
}
