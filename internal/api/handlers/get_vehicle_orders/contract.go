package get_vehicle_orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

type OrderService interface {
	GetVehicleOrders(ctx context.Context, filter domain.VehicleOrdersFilter, requesterID uuid.UUID) ([]*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
