package cancel_order

import (
	"context"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

type OrderService interface {
	Cancel(ctx context.Context, orderID, requesterID uuid.UUID) (*models.CancelOrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
