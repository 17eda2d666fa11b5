package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	vehicleClient "github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

// UseCase use case проверки доступности автомобиля на интервал
// Чистое чтение для предварительных запросов UI: то же правило
// пересечения, что и у бронирования, но без блокировок и побочных
// эффектов - слот здесь никогда не резервируется
type UseCase struct {
	orderRepo     OrderRepository
	vehicleClient VehicleServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	vehicleClient VehicleServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:     orderRepo,
		vehicleClient: vehicleClient,
		logger:        logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: vehicle=%s, pickup=%s, return=%s",
		req.VehicleID, req.PickupDatetime, req.ReturnDatetime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что автомобиль существует
	if _, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CheckAvailability: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Активные заказы автомобиля (без FOR UPDATE - вне транзакции)
	active, err := uc.orderRepo.GetByVehicleWithFilter(ctx, domain.VehicleOrdersFilter{
		VehicleID:  req.VehicleID,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get active orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get active orders: %v", ErrInternal, err)
	}

	candidate := domain.Interval{Start: req.PickupDatetime, End: req.ReturnDatetime}
	available := !domain.HasConflict(candidate, active)

	uc.logger.Info("CheckAvailability: vehicle=%s available=%t", req.VehicleID, available)

	return &Response{
		VehicleID: req.VehicleID,
		Available: available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VehicleID == uuid.Nil {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if req.PickupDatetime.IsZero() || req.ReturnDatetime.IsZero() {
		return fmt.Errorf("%w: pickup and return datetimes are required", ErrInvalidInput)
	}

	if !req.ReturnDatetime.After(req.PickupDatetime) {
		return fmt.Errorf("%w: returnDatetime must be after pickupDatetime", ErrInvalidInterval)
	}

	return nil
}
