package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

type fakeOrderRepo struct {
	orders []*domain.Order
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	vehicleID := uuid.New()
	pickup := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	booked := &domain.Order{
		VehicleID:      vehicleID,
		OrderStatus:    domain.StatusUpcoming,
		PickupDatetime: pickup,
		ReturnDatetime: pickup.Add(4 * time.Hour),
	}

	repo := &fakeOrderRepo{orders: []*domain.Order{booked}}
	client := &fakeVehicleClient{vehicles: map[uuid.UUID]*vehicleservice.Vehicle{
		vehicleID: {ID: vehicleID},
	}}
	uc := NewUseCase(repo, client, nopLogger{})

	t.Run("free interval is available", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			VehicleID:      vehicleID,
			PickupDatetime: pickup.Add(4 * time.Hour),
			ReturnDatetime: pickup.Add(8 * time.Hour),
		})
		require.NoError(t, err)
		assert.True(t, resp.Available)
	})

	t.Run("overlapping interval is not available", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			VehicleID:      vehicleID,
			PickupDatetime: pickup.Add(time.Hour),
			ReturnDatetime: pickup.Add(5 * time.Hour),
		})
		require.NoError(t, err)
		assert.False(t, resp.Available)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			VehicleID:      uuid.New(),
			PickupDatetime: pickup,
			ReturnDatetime: pickup.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("invalid interval", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			VehicleID:      vehicleID,
			PickupDatetime: pickup,
			ReturnDatetime: pickup,
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			PickupDatetime: pickup,
			ReturnDatetime: pickup.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
