package vehiclestatus

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/infra/storage/vehiclecache"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByVehicleWithFilter(ctx context.Context, filter domain.VehicleOrdersFilter) ([]*domain.Order, error)
}

// CacheRepository интерфейс витринного кэша статусов
type CacheRepository interface {
	Upsert(ctx context.Context, vehicleID uuid.UUID, status string) error
	Get(ctx context.Context, vehicleID uuid.UUID) (*vehiclecache.Entry, error)
}

// CatalogNotifier уведомляет каталог о смене витринного статуса
type CatalogNotifier interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
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
