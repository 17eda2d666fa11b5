package get_vehicle_status

import (
	"context"

	"github.com/google/uuid"
)

type VehicleStatusService interface {
	Get(ctx context.Context, vehicleID uuid.UUID) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
