package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/infra/storage/order"
	vehicleClient "github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

// Service сервис жизненного цикла заказов аренды
// Все методы проверяют принадлежность заказа пользователю;
// код выдачи (OTP) наружу не отдается
type Service struct {
	orderRepo      OrderRepository
	vehicleService VehicleServiceClient
	cacheRefresher StatusCacheRefresher
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый сервис заказов
func NewService(
	orderRepo OrderRepository,
	vehicleService VehicleServiceClient,
	cacheRefresher StatusCacheRefresher,
	logger Logger,
) *Service {
	return &Service{
		orderRepo:      orderRepo,
		vehicleService: vehicleService,
		cacheRefresher: cacheRefresher,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider заменяет провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID возвращает заказ, если он принадлежит запрашивающему клиенту
// или владельцу автомобиля из заказа
func (s *Service) GetByID(ctx context.Context, orderID, requesterID uuid.UUID) (*models.OrderResponse, error) {
	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.ClientID != requesterID {
		owned, err := s.requesterOwnsVehicle(ctx, o.VehicleID, requesterID)
		if err != nil {
			return nil, err
		}
		if !owned {
			s.logger.Warn("Orders.GetByID: access denied, order=%s requester=%s", orderID, requesterID)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainOrder(o), nil
}

// GetUserOrders возвращает заказы клиента, отсортированные по дате создания (убывание)
func (s *Service) GetUserOrders(ctx context.Context, filter domain.UserOrdersFilter) ([]*models.OrderResponse, error) {
	if filter.ClientID == uuid.Nil {
		return nil, fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	list, err := s.orderRepo.GetByClientID(ctx, filter.ClientID, filter.Status)
	if err != nil {
		s.logger.Error("Orders.GetUserOrders: failed to get orders for client=%s: %v", filter.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	s.logger.Info("Orders.GetUserOrders: client=%s, %d orders", filter.ClientID, len(list))
	return models.FromDomainOrders(list), nil
}

// GetVehicleOrders возвращает заказы по автомобилю
// Доступно только владельцу автомобиля
func (s *Service) GetVehicleOrders(ctx context.Context, filter domain.VehicleOrdersFilter, requesterID uuid.UUID) ([]*models.OrderResponse, error) {
	if filter.VehicleID == uuid.Nil {
		return nil, fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	owned, err := s.requesterOwnsVehicle(ctx, filter.VehicleID, requesterID)
	if err != nil {
		return nil, err
	}
	if !owned {
		s.logger.Warn("Orders.GetVehicleOrders: access denied, vehicle=%s requester=%s", filter.VehicleID, requesterID)
		return nil, ErrAccessDenied
	}

	list, err := s.orderRepo.GetByVehicleWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Orders.GetVehicleOrders: failed to get orders for vehicle=%s: %v", filter.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	s.logger.Info("Orders.GetVehicleOrders: vehicle=%s, %d orders", filter.VehicleID, len(list))
	return models.FromDomainOrders(list), nil
}

// Cancel отменяет предстоящий заказ
// Отменить можно только заказ в статусе upcoming до наступления времени выдачи;
// возврат средств положен, если выдача еще не наступила
func (s *Service) Cancel(ctx context.Context, orderID, requesterID uuid.UUID) (*models.CancelOrderResponse, error) {
	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.ClientID != requesterID {
		s.logger.Warn("Orders.Cancel: access denied, order=%s requester=%s", orderID, requesterID)
		return nil, ErrAccessDenied
	}

	switch o.OrderStatus {
	case domain.StatusCancelled:
		return nil, ErrAlreadyCancelled
	case domain.StatusCompleted:
		return nil, ErrOrderImmutable
	case domain.StatusOngoing:
		return nil, ErrTooLateToCancel
	}

	now := s.timeProvider.Now()
	if !o.PickupDatetime.After(now) {
		s.logger.Warn("Orders.Cancel: pickup time already reached, order=%s", orderID)
		return nil, ErrTooLateToCancel
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.StatusCancelled); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Orders.Cancel: failed to update status, order=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: failed to cancel order: %v", ErrInternal, err)
	}

	s.refreshStatusCache(ctx, o.VehicleID)
	s.logger.Info("Orders.Cancel: order=%s cancelled, refund eligible", orderID)

	return &models.CancelOrderResponse{
		OrderID:        orderID,
		OrderStatus:    domain.StatusCancelled,
		RefundEligible: o.PickupDatetime.After(now),
	}, nil
}

// Start начинает аренду (выдача автомобиля)
// Требует совпадения OTP и наступления времени выдачи
func (s *Service) Start(ctx context.Context, orderID, requesterID uuid.UUID, otp string) (*models.OrderResponse, error) {
	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.ClientID != requesterID {
		owned, err := s.requesterOwnsVehicle(ctx, o.VehicleID, requesterID)
		if err != nil {
			return nil, err
		}
		if !owned {
			s.logger.Warn("Orders.Start: access denied, order=%s requester=%s", orderID, requesterID)
			return nil, ErrAccessDenied
		}
	}

	if err := s.checkTransition(o, domain.StatusOngoing); err != nil {
		return nil, err
	}

	if o.OTP != otp {
		s.logger.Warn("Orders.Start: invalid OTP for order=%s", orderID)
		return nil, ErrInvalidOTP
	}

	now := s.timeProvider.Now()
	if now.Before(o.PickupDatetime) {
		s.logger.Warn("Orders.Start: pickup time not reached, order=%s", orderID)
		return nil, ErrPickupNotReached
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, domain.StatusOngoing); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Orders.Start: failed to update status, order=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: failed to start order: %v", ErrInternal, err)
	}

	s.refreshStatusCache(ctx, o.VehicleID)
	s.logger.Info("Orders.Start: order=%s is ongoing", orderID)

	o.OrderStatus = domain.StatusOngoing
	return models.FromDomainOrder(o), nil
}

// Complete завершает аренду (возврат автомобиля)
// Штраф за опоздание начисляется за каждый начатый час после
// планового времени возврата
func (s *Service) Complete(ctx context.Context, orderID, requesterID uuid.UUID) (*models.CompleteOrderResponse, error) {
	o, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.ClientID != requesterID {
		owned, err := s.requesterOwnsVehicle(ctx, o.VehicleID, requesterID)
		if err != nil {
			return nil, err
		}
		if !owned {
			s.logger.Warn("Orders.Complete: access denied, order=%s requester=%s", orderID, requesterID)
			return nil, ErrAccessDenied
		}
	}

	if err := s.checkTransition(o, domain.StatusCompleted); err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleService.GetVehicle(ctx, o.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			s.logger.Error("Orders.Complete: vehicle id=%s missing in catalog", o.VehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Orders.Complete: failed to get vehicle id=%s: %v", o.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	lateFee := domain.LateFeeFor(o.ReturnDatetime, now, vehicle.LateFeePerHour)

	if err := s.orderRepo.Complete(ctx, orderID, now, lateFee); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Orders.Complete: failed to complete order=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: failed to complete order: %v", ErrInternal, err)
	}

	s.refreshStatusCache(ctx, o.VehicleID)
	s.logger.Info("Orders.Complete: order=%s completed, late fee=%.2f", orderID, lateFee)

	o.OrderStatus = domain.StatusCompleted
	o.ActualReturnDatetime = &now
	o.LateFee = lateFee
	return &models.CompleteOrderResponse{
		Order:   models.FromDomainOrder(o),
		LateFee: lateFee,
	}, nil
}

// getOrder загружает заказ с маппингом ошибок репозитория
func (s *Service) getOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	if orderID == uuid.Nil {
		return nil, fmt.Errorf("%w: orderID is required", ErrInvalidInput)
	}

	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			s.logger.Warn("Orders: order id=%s not found", orderID)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Orders: failed to get order id=%s: %v", orderID, err)
		return nil, fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
	}

	return o, nil
}

// checkTransition проверяет допустимость перехода статуса
// Конечные статусы дают специфичные ошибки вместо общей
func (s *Service) checkTransition(o *domain.Order, target domain.OrderStatus) error {
	if domain.CanTransition(o.OrderStatus, target) {
		return nil
	}

	switch o.OrderStatus {
	case domain.StatusCancelled:
		return ErrAlreadyCancelled
	case domain.StatusCompleted:
		return ErrOrderImmutable
	default:
		s.logger.Warn("Orders: invalid transition %s -> %s, order=%s", o.OrderStatus, target, o.ID)
		return ErrInvalidTransition
	}
}

// requesterOwnsVehicle проверяет, что пользователь владеет автомобилем
func (s *Service) requesterOwnsVehicle(ctx context.Context, vehicleID, requesterID uuid.UUID) (bool, error) {
	vehicle, err := s.vehicleService.GetVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			return false, nil
		}
		s.logger.Error("Orders: failed to get vehicle id=%s: %v", vehicleID, err)
		return false, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	return vehicle.OwnerID != nil && *vehicle.OwnerID == requesterID, nil
}

// refreshStatusCache обновляет витринный кэш статуса автомобиля
// Ошибка не прерывает основную операцию
func (s *Service) refreshStatusCache(ctx context.Context, vehicleID uuid.UUID) {
	if s.cacheRefresher == nil {
		return
	}
	if err := s.cacheRefresher.Refresh(ctx, vehicleID); err != nil {
		s.logger.Warn("Orders: failed to refresh status cache for vehicle=%s: %v", vehicleID, err)
	}
}
