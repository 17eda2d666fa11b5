package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByClientID(ctx context.Context, clientID uuid.UUID, status *domain.OrderStatus) ([]*domain.Order, error)
	GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
	Complete(ctx context.Context, id uuid.UUID, actualReturn time.Time, lateFee float64) error
}

// VehicleServiceClient интерфейс клиента каталога VehicleService
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*vehicleservice.Vehicle, error)
}

// StatusCacheRefresher обновляет витринный кэш статуса автомобиля
type StatusCacheRefresher interface {
	Refresh(ctx context.Context, vehicleID uuid.UUID) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
