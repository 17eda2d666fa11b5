package get_user_orders

import (
	"context"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

type OrderService interface {
	GetUserOrders(ctx context.Context, filter domain.UserOrdersFilter) ([]*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
