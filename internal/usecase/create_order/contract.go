package create_order

import (
	"context"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error)
}

// VehicleServiceClient интерфейс клиента каталога VehicleService
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*vehicleservice.Vehicle, error)
}

// StatusCacheRefresher обновляет витринный кэш статуса автомобиля
type StatusCacheRefresher interface {
	Refresh(ctx context.Context, vehicleID uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// OTPGenerator генератор кодов подтверждения выдачи
type OTPGenerator interface {
	Generate() (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
