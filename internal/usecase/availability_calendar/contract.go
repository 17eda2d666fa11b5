package availability_calendar

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error)
}

// VehicleServiceClient интерфейс клиента каталога VehicleService
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*vehicleservice.Vehicle, error)
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
