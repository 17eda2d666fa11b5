package get_order

import (
	"context"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

type OrderService interface {
	GetByID(ctx context.Context, orderID, requesterID uuid.UUID) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
