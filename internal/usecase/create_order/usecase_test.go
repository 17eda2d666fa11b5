package create_order

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
	"github.com/vrmarket/VRM-RentalService/pkg/otp"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []*domain.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	created := *o
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.orders = append(r.orders, &created)
	return &created, nil
}

func (r *fakeOrderRepo) GetByVehicleWithFilter(_ context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
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

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
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
	mu    sync.Mutex
	calls int
}

func (f *fakeCacheRefresher) Refresh(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return nil
}

// fakeTxManager сериализует транзакции мьютексом, как это делает
// уровень SERIALIZABLE с блокировкой строк
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestVehicle(id uuid.UUID) *vehicleservice.Vehicle {
	return &vehicleservice.Vehicle{
		ID:              id,
		Name:            "Test Sedan",
		PricePerHour:    10,
		PricePerDay:     150,
		SecurityDeposit: 500,
		LateFeePerHour:  25,
		CurrentStatus:   "available",
	}
}

func newTestUseCase(repo *fakeOrderRepo, vehicles ...*vehicleservice.Vehicle) (*UseCase, *fakeCacheRefresher) {
	client := &fakeVehicleClient{vehicles: map[uuid.UUID]*vehicleservice.Vehicle{}}
	for _, v := range vehicles {
		client.vehicles[v.ID] = v
	}
	refresher := &fakeCacheRefresher{}
	uc := NewUseCase(repo, client, refresher, &fakeTxManager{}, otp.NewCryptoGenerator(), nopLogger{})
	return uc, refresher
}

func validRequest(clientID, vehicleID uuid.UUID) *Request {
	pickup := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)
	return &Request{
		ClientID:        clientID,
		VehicleID:       vehicleID,
		PickupDatetime:  pickup,
		ReturnDatetime:  pickup.Add(4 * time.Hour),
		PickupLocation:  "Moscow, Tverskaya 1",
		DropoffLocation: "Moscow, Arbat 10",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, refresher := newTestUseCase(repo, newTestVehicle(vehicleID))

	req := validRequest(uuid.New(), vehicleID)
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, req.ClientID, resp.ClientID)
	assert.Equal(t, "upcoming", resp.OrderStatus)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), resp.OTP)

	// 4 часа по 10 в час
	assert.InDelta(t, 40.0, resp.RentalAmount, 1e-9)
	assert.InDelta(t, 500.0, resp.SecurityDeposit, 1e-9)

	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 1, refresher.calls)
}

func TestUseCase_Execute_DailyRate(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	req := validRequest(uuid.New(), vehicleID)
	req.ReturnDatetime = req.PickupDatetime.Add(25 * time.Hour)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 25 часов - двое начатых суток по 150
	assert.InDelta(t, 300.0, resp.RentalAmount, 1e-9)
}

func TestUseCase_Execute_InvalidInterval(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	req := validRequest(uuid.New(), vehicleID)
	req.ReturnDatetime = req.PickupDatetime

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, 0, repo.count(), "invalid request must not be persisted")
}

func TestUseCase_Execute_MissingLocations(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	req := validRequest(uuid.New(), vehicleID)
	req.PickupLocation = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_VehicleNotFound(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc, _ := newTestUseCase(repo)

	req := validRequest(uuid.New(), uuid.New())

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.Equal(t, 0, repo.count())
}

func TestUseCase_Execute_SlotUnavailable(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	first := validRequest(uuid.New(), vehicleID)
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Пересекающийся интервал того же автомобиля
	second := validRequest(uuid.New(), vehicleID)
	second.PickupDatetime = first.PickupDatetime.Add(time.Hour)
	second.ReturnDatetime = first.ReturnDatetime.Add(time.Hour)

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, repo.count())
}

func TestUseCase_Execute_BackToBackAccepted(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	first := validRequest(uuid.New(), vehicleID)
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Выдача ровно в момент возврата первого заказа
	second := validRequest(uuid.New(), vehicleID)
	second.PickupDatetime = first.ReturnDatetime
	second.ReturnDatetime = first.ReturnDatetime.Add(2 * time.Hour)

	_, err = uc.Execute(context.Background(), second)
	assert.NoError(t, err)
	assert.Equal(t, 2, repo.count())
}

func TestUseCase_Execute_CancelledOrderFreesSlot(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	first := validRequest(uuid.New(), vehicleID)
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Отменяем заказ напрямую в хранилище
	repo.mu.Lock()
	repo.orders[0].OrderStatus = domain.StatusCancelled
	repo.mu.Unlock()

	second := validRequest(uuid.New(), vehicleID)
	_, err = uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestUseCase_Execute_ConcurrentRequests(t *testing.T) {
	repo := &fakeOrderRepo{}
	vehicleID := uuid.New()
	uc, _ := newTestUseCase(repo, newTestVehicle(vehicleID))

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest(uuid.New(), vehicleID)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotUnavailable)
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent request may win the slot")
	assert.Equal(t, 1, repo.count())
}
