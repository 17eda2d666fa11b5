package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{StatusUpcoming, StatusOngoing, true},
		{StatusUpcoming, StatusCancelled, true},
		{StatusUpcoming, StatusCompleted, false},
		{StatusOngoing, StatusCompleted, true},
		{StatusOngoing, StatusCancelled, false},
		{StatusOngoing, StatusUpcoming, false},
		{StatusCompleted, StatusUpcoming, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusUpcoming, false},
		{StatusCancelled, StatusOngoing, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"upcoming", "ongoing", "completed", "cancelled"} {
		status, err := ParseOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}

	_, err := ParseOrderStatus("pending")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestOrder_IsActive(t *testing.T) {
	assert.True(t, (&Order{OrderStatus: StatusUpcoming}).IsActive())
	assert.True(t, (&Order{OrderStatus: StatusOngoing}).IsActive())
	assert.False(t, (&Order{OrderStatus: StatusCompleted}).IsActive())
	assert.False(t, (&Order{OrderStatus: StatusCancelled}).IsActive())
}

func TestOrder_CanBeCancelled(t *testing.T) {
	now := mustTime(t, "2026-09-01T10:00:00Z")

	t.Run("upcoming before pickup", func(t *testing.T) {
		o := &Order{OrderStatus: StatusUpcoming, PickupDatetime: now.Add(time.Hour)}
		assert.True(t, o.CanBeCancelled(now))
	})

	t.Run("upcoming at pickup time", func(t *testing.T) {
		o := &Order{OrderStatus: StatusUpcoming, PickupDatetime: now}
		assert.False(t, o.CanBeCancelled(now))
	})

	t.Run("ongoing", func(t *testing.T) {
		o := &Order{OrderStatus: StatusOngoing, PickupDatetime: now.Add(time.Hour)}
		assert.False(t, o.CanBeCancelled(now))
	})
}

func TestLateFeeFor(t *testing.T) {
	ret := mustTime(t, "2026-09-01T10:00:00Z")

	tests := []struct {
		name         string
		actualReturn time.Time
		perHour      float64
		expected     float64
	}{
		{"on time", ret, 10, 0},
		{"early return", ret.Add(-time.Hour), 10, 0},
		{"90 minutes late charges two hours", ret.Add(90 * time.Minute), 10, 20},
		{"exactly one hour late", ret.Add(time.Hour), 10, 10},
		{"one minute late charges full hour", ret.Add(time.Minute), 15, 15},
		{"full day late", ret.Add(24 * time.Hour), 10, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, LateFeeFor(ret, tt.actualReturn, tt.perHour), 1e-9)
		})
	}
}

func TestRentalAmountFor(t *testing.T) {
	pickup := mustTime(t, "2026-09-01T10:00:00Z")

	tests := []struct {
		name     string
		ret      time.Time
		perHour  float64
		perDay   float64
		expected float64
	}{
		{"two hours", pickup.Add(2 * time.Hour), 10, 100, 20},
		{"90 minutes charges two hours", pickup.Add(90 * time.Minute), 10, 100, 20},
		{"23 hours stays hourly", pickup.Add(23 * time.Hour), 10, 100, 230},
		{"exactly one day", pickup.Add(24 * time.Hour), 10, 100, 100},
		{"25 hours charges two days", pickup.Add(25 * time.Hour), 10, 100, 200},
		{"three days", pickup.Add(72 * time.Hour), 10, 100, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RentalAmountFor(pickup, tt.ret, tt.perHour, tt.perDay), 1e-9)
		})
	}
}
