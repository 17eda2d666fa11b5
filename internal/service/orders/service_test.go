package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/infra/storage/order"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

type fakeOrderRepo struct {
	orders map[uuid.UUID]*domain.Order
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: map[uuid.UUID]*domain.Order{}}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) GetByClientID(_ context.Context, clientID uuid.UUID, status *domain.OrderStatus) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, o := range r.orders {
		if o.ClientID != clientID {
			continue
		}
		if status != nil && o.OrderStatus != *status {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrderRepo) GetByVehicleWithFilter(_ context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, o := range r.orders {
		if o.VehicleID != filter.VehicleID {
			continue
		}
		if filter.ActiveOnly && !o.IsActive() {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.OrderStatus = status
	return nil
}

func (r *fakeOrderRepo) Complete(_ context.Context, id uuid.UUID, actualReturn time.Time, lateFee float64) error {
	o, ok := r.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.OrderStatus = domain.StatusCompleted
	o.ActualReturnDatetime = &actualReturn
	o.LateFee = lateFee
	return nil
}

type fakeVehicleClient struct {
	vehicles map[uuid.UUID]*vehicleservice.Vehicle
}

func (c *fakeVehicleClient) GetVehicle(_ context.Context, id uuid.UUID) (*vehicleservice.Vehicle, error) {
	v, ok := c.vehicles[id]
	if !ok {
		return nil, vehicleservice.ErrVehicleNotFound
	}
	return v, nil
}

type fakeCacheRefresher struct {
	calls int
}

func (f *fakeCacheRefresher) Refresh(_ context.Context, _ uuid.UUID) error {
	f.calls++
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

func newTestOrder(status domain.OrderStatus, pickup time.Time) *domain.Order {
	return &domain.Order{
		ID:             uuid.New(),
		ClientID:       uuid.New(),
		VehicleID:      uuid.New(),
		PickupDatetime: pickup,
		ReturnDatetime: pickup.Add(4 * time.Hour),
		OTP:            "482913",
		OrderStatus:    status,
		PaymentStatus:  domain.PaymentPaid,
	}
}

func newTestService(repo *fakeOrderRepo, vehicles ...*vehicleservice.Vehicle) (*Service, *fakeCacheRefresher) {
	client := &fakeVehicleClient{vehicles: map[uuid.UUID]*vehicleservice.Vehicle{}}
	for _, v := range vehicles {
		client.vehicles[v.ID] = v
	}
	refresher := &fakeCacheRefresher{}
	svc := NewService(repo, client, refresher, nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: testNow})
	return svc, refresher
}

func TestService_GetByID(t *testing.T) {
	o := newTestOrder(domain.StatusUpcoming, testNow.Add(24*time.Hour))
	repo := newFakeOrderRepo(o)
	svc, _ := newTestService(repo)

	t.Run("owner sees the order", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), o.ID, o.ClientID)
		require.NoError(t, err)
		assert.Equal(t, o.ID, resp.ID)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), o.ID, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.New(), o.ClientID)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_GetByID_VehicleOwner(t *testing.T) {
	o := newTestOrder(domain.StatusUpcoming, testNow.Add(24*time.Hour))
	repo := newFakeOrderRepo(o)

	ownerID := uuid.New()
	svc, _ := newTestService(repo, &vehicleservice.Vehicle{ID: o.VehicleID, OwnerID: &ownerID})

	resp, err := svc.GetByID(context.Background(), o.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, resp.ID)
}

func TestService_Cancel(t *testing.T) {
	t.Run("upcoming order before pickup is cancelled with refund", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(24*time.Hour))
		repo := newFakeOrderRepo(o)
		svc, refresher := newTestService(repo)

		resp, err := svc.Cancel(context.Background(), o.ID, o.ClientID)
		require.NoError(t, err)

		assert.Equal(t, domain.StatusCancelled, resp.OrderStatus)
		assert.True(t, resp.RefundEligible)
		assert.Equal(t, domain.StatusCancelled, repo.orders[o.ID].OrderStatus)
		assert.Equal(t, 1, refresher.calls)
	})

	t.Run("double cancel is rejected", func(t *testing.T) {
		o := newTestOrder(domain.StatusCancelled, testNow.Add(24*time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(context.Background(), o.ID, o.ClientID)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("completed order is immutable", func(t *testing.T) {
		o := newTestOrder(domain.StatusCompleted, testNow.Add(-24*time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(context.Background(), o.ID, o.ClientID)
		assert.ErrorIs(t, err, ErrOrderImmutable)
	})

	t.Run("ongoing rental cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(domain.StatusOngoing, testNow.Add(-time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(context.Background(), o.ID, o.ClientID)
		assert.ErrorIs(t, err, ErrTooLateToCancel)
	})

	t.Run("pickup time reached leaves order unchanged", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(-time.Minute))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(context.Background(), o.ID, o.ClientID)
		assert.ErrorIs(t, err, ErrTooLateToCancel)
		assert.Equal(t, domain.StatusUpcoming, repo.orders[o.ID].OrderStatus)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(24*time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Cancel(context.Background(), o.ID, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Start(t *testing.T) {
	t.Run("valid OTP after pickup time starts the rental", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(-time.Minute))
		repo := newFakeOrderRepo(o)
		svc, refresher := newTestService(repo)

		resp, err := svc.Start(context.Background(), o.ID, o.ClientID, "482913")
		require.NoError(t, err)

		assert.Equal(t, domain.StatusOngoing, resp.OrderStatus)
		assert.Equal(t, domain.StatusOngoing, repo.orders[o.ID].OrderStatus)
		assert.Equal(t, 1, refresher.calls)
	})

	t.Run("wrong OTP is rejected", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(-time.Minute))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Start(context.Background(), o.ID, o.ClientID, "000000")
		assert.ErrorIs(t, err, ErrInvalidOTP)
		assert.Equal(t, domain.StatusUpcoming, repo.orders[o.ID].OrderStatus)
	})

	t.Run("before pickup time is rejected", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Start(context.Background(), o.ID, o.ClientID, "482913")
		assert.ErrorIs(t, err, ErrPickupNotReached)
	})

	t.Run("cancelled order cannot start", func(t *testing.T) {
		o := newTestOrder(domain.StatusCancelled, testNow.Add(-time.Minute))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Start(context.Background(), o.ID, o.ClientID, "482913")
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
	})

	t.Run("ongoing order cannot start twice", func(t *testing.T) {
		o := newTestOrder(domain.StatusOngoing, testNow.Add(-time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo)

		_, err := svc.Start(context.Background(), o.ID, o.ClientID, "482913")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestService_Complete(t *testing.T) {
	vehicle := func(id uuid.UUID) *vehicleservice.Vehicle {
		return &vehicleservice.Vehicle{ID: id, LateFeePerHour: 25}
	}

	t.Run("on-time return has no late fee", func(t *testing.T) {
		// Возврат через 4 часа после выдачи, аренда идет
		o := newTestOrder(domain.StatusOngoing, testNow.Add(-2*time.Hour))
		repo := newFakeOrderRepo(o)
		svc, refresher := newTestService(repo, vehicle(o.VehicleID))

		resp, err := svc.Complete(context.Background(), o.ID, o.ClientID)
		require.NoError(t, err)

		assert.InDelta(t, 0.0, resp.LateFee, 1e-9)
		assert.Equal(t, domain.StatusCompleted, repo.orders[o.ID].OrderStatus)
		require.NotNil(t, repo.orders[o.ID].ActualReturnDatetime)
		assert.Equal(t, testNow, *repo.orders[o.ID].ActualReturnDatetime)
		assert.Equal(t, 1, refresher.calls)
	})

	t.Run("late return charges each started hour", func(t *testing.T) {
		// Плановый возврат 1.5 часа назад - два начатых часа по 25
		o := newTestOrder(domain.StatusOngoing, testNow.Add(-330*time.Minute))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo, vehicle(o.VehicleID))

		resp, err := svc.Complete(context.Background(), o.ID, o.ClientID)
		require.NoError(t, err)

		assert.InDelta(t, 50.0, resp.LateFee, 1e-9)
		assert.InDelta(t, 50.0, repo.orders[o.ID].LateFee, 1e-9)
	})

	t.Run("upcoming order cannot complete", func(t *testing.T) {
		o := newTestOrder(domain.StatusUpcoming, testNow.Add(time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo, vehicle(o.VehicleID))

		_, err := svc.Complete(context.Background(), o.ID, o.ClientID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("completed order cannot complete twice", func(t *testing.T) {
		o := newTestOrder(domain.StatusCompleted, testNow.Add(-24*time.Hour))
		repo := newFakeOrderRepo(o)
		svc, _ := newTestService(repo, vehicle(o.VehicleID))

		_, err := svc.Complete(context.Background(), o.ID, o.ClientID)
		assert.ErrorIs(t, err, ErrOrderImmutable)
	})
}

func TestService_GetVehicleOrders(t *testing.T) {
	o := newTestOrder(domain.StatusUpcoming, testNow.Add(24*time.Hour))
	repo := newFakeOrderRepo(o)

	ownerID := uuid.New()
	svc, _ := newTestService(repo, &vehicleservice.Vehicle{ID: o.VehicleID, OwnerID: &ownerID})

	t.Run("vehicle owner sees orders", func(t *testing.T) {
		list, err := svc.GetVehicleOrders(context.Background(),
			domain.VehicleOrdersFilter{VehicleID: o.VehicleID}, ownerID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetVehicleOrders(context.Background(),
			domain.VehicleOrdersFilter{VehicleID: o.VehicleID}, uuid.New())
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
