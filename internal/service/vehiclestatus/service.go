package vehiclestatus

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
)

// Service сервис витринного статуса автомобиля
// Статус пересчитывается из активных заказов: автомобиль считается
// занятым, пока идет аренда или текущий момент попадает в интервал
// предстоящего заказа. Кэш и каталог - подсказки для витрины,
// проверка конфликтов бронирования их не использует
type Service struct {
	orderRepo    OrderRepository
	cacheRepo    CacheRepository
	catalog      CatalogNotifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис витринного статуса
func NewService(
	orderRepo OrderRepository,
	cacheRepo CacheRepository,
	catalog CatalogNotifier,
	logger Logger,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		cacheRepo:    cacheRepo,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider заменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Get возвращает актуальный витринный статус автомобиля
// Статус всегда пересчитывается из заказов, затем кэш обновляется
func (s *Service) Get(ctx context.Context, vehicleID uuid.UUID) (string, error) {
	if vehicleID == uuid.Nil {
		return "", fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	status, err := s.compute(ctx, vehicleID)
	if err != nil {
		// Витрина переживает недоступность заказов на устаревшем кэше
		if entry, cacheErr := s.cacheRepo.Get(ctx, vehicleID); cacheErr == nil {
			s.logger.Warn("VehicleStatus.Get: serving stale cached status for vehicle=%s: %v", vehicleID, err)
			return entry.CurrentStatus, nil
		}
		return "", err
	}

	if err := s.cacheRepo.Upsert(ctx, vehicleID, status); err != nil {
		s.logger.Warn("VehicleStatus.Get: failed to upsert cache for vehicle=%s: %v", vehicleID, err)
	}

	return status, nil
}

// Refresh пересчитывает статус и рассылает его в кэш и каталог
func (s *Service) Refresh(ctx context.Context, vehicleID uuid.UUID) error {
	if vehicleID == uuid.Nil {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	status, err := s.compute(ctx, vehicleID)
	if err != nil {
		return err
	}

	if err := s.cacheRepo.Upsert(ctx, vehicleID, status); err != nil {
		s.logger.Warn("VehicleStatus.Refresh: failed to upsert cache for vehicle=%s: %v", vehicleID, err)
	}

	if s.catalog != nil {
		if err := s.catalog.UpdateStatus(ctx, vehicleID, status); err != nil {
			s.logger.Warn("VehicleStatus.Refresh: failed to notify catalog for vehicle=%s: %v", vehicleID, err)
		}
	}

	s.logger.Info("VehicleStatus.Refresh: vehicle=%s status=%s", vehicleID, status)
	return nil
}

// compute вычисляет статус из активных заказов
func (s *Service) compute(ctx context.Context, vehicleID uuid.UUID) (string, error) {
	orders, err := s.orderRepo.GetByVehicleWithFilter(ctx, domain.VehicleOrdersFilter{
		VehicleID:  vehicleID,
		ActiveOnly: true,
	})
	if err != nil {
		s.logger.Error("VehicleStatus: failed to get orders for vehicle=%s: %v", vehicleID, err)
		return "", fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	for _, o := range orders {
		if o.OrderStatus == domain.StatusOngoing {
			return domain.VehicleStatusBooked, nil
		}
		if o.OrderStatus == domain.StatusUpcoming &&
			!o.PickupDatetime.After(now) && o.ReturnDatetime.After(now) {
			return domain.VehicleStatusBooked, nil
		}
	}

	return domain.VehicleStatusAvailable, nil
}
