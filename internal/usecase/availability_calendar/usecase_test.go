package availability_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
	"github.com/vrmarket/VRM-RentalService/pkg/ptr"
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
		if filter.RangeStart != nil && !o.ReturnDatetime.After(*filter.RangeStart) {
			continue
		}
		if filter.RangeEnd != nil && o.PickupDatetime.After(*filter.RangeEnd) {
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

func TestResolveRange(t *testing.T) {
	now := time.Date(2026, 9, 10, 15, 30, 0, 0, time.UTC)

	t.Run("default range starts today and spans 90 days", func(t *testing.T) {
		start, end, err := resolveRange(&Request{}, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, start.AddDate(0, 0, domain.DefaultCalendarRangeDays), end)
	})

	t.Run("explicit range is used as is", func(t *testing.T) {
		from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 7)
		start, end, err := resolveRange(&Request{RangeStart: &from, RangeEnd: &to}, now)
		require.NoError(t, err)
		assert.Equal(t, from, start)
		assert.Equal(t, to, end)
	})

	t.Run("single bound is rejected", func(t *testing.T) {
		from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		_, _, err := resolveRange(&Request{RangeStart: &from}, now)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("empty range is rejected", func(t *testing.T) {
		from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		_, _, err := resolveRange(&Request{RangeStart: &from, RangeEnd: &from}, now)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestUseCase_Execute(t *testing.T) {
	vehicleID := uuid.New()
	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	orders := []*domain.Order{
		{
			VehicleID:      vehicleID,
			OrderStatus:    domain.StatusUpcoming,
			PickupDatetime: base,
			ReturnDatetime: base.Add(4 * time.Hour),
		},
		{
			VehicleID:      vehicleID,
			OrderStatus:    domain.StatusOngoing,
			PickupDatetime: base.AddDate(0, 0, 2),
			ReturnDatetime: base.AddDate(0, 0, 3),
		},
		{
			// Отмененный заказ в календарь не попадает
			VehicleID:      vehicleID,
			OrderStatus:    domain.StatusCancelled,
			PickupDatetime: base.AddDate(0, 0, 5),
			ReturnDatetime: base.AddDate(0, 0, 6),
		},
	}

	repo := &fakeOrderRepo{orders: orders}
	client := &fakeVehicleClient{vehicles: map[uuid.UUID]*vehicleservice.Vehicle{
		vehicleID: {ID: vehicleID},
	}}
	uc := NewUseCase(repo, client, nopLogger{})

	t.Run("explicit range returns active intervals", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			VehicleID:  vehicleID,
			RangeStart: ptr.Ptr(base.AddDate(0, 0, -1)),
			RangeEnd:   ptr.Ptr(base.AddDate(0, 0, 10)),
		})
		require.NoError(t, err)
		require.Len(t, resp.Entries, 2)

		assert.Equal(t, base, resp.Entries[0].Start)
		assert.Equal(t, "upcoming", resp.Entries[0].Status)
		assert.Equal(t, "ongoing", resp.Entries[1].Status)
	})

	t.Run("range outside orders is empty", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			VehicleID:  vehicleID,
			RangeStart: ptr.Ptr(base.AddDate(0, 1, 0)),
			RangeEnd:   ptr.Ptr(base.AddDate(0, 2, 0)),
		})
		require.NoError(t, err)
		assert.Empty(t, resp.Entries)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{VehicleID: uuid.New()})
		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("missing vehicle id", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
