package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	vehicleClient "github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

// UseCase use case бронирования автомобиля
type UseCase struct {
	orderRepo      OrderRepository
	vehicleClient  VehicleServiceClient
	cacheRefresher StatusCacheRefresher
	txManager      TransactionManager
	otpGenerator   OTPGenerator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	vehicleClient VehicleServiceClient,
	cacheRefresher StatusCacheRefresher,
	txManager TransactionManager,
	otpGenerator OTPGenerator,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:      orderRepo,
		vehicleClient:  vehicleClient,
		cacheRefresher: cacheRefresher,
		txManager:      txManager,
		otpGenerator:   otpGenerator,
		logger:         logger,
	}
}

// Execute выполняет use case бронирования
// Проверка занятости слота и вставка заказа выполняются одной
// сериализуемой транзакцией: активные заказы автомобиля блокируются
// (FOR UPDATE) на время check-then-insert, поэтому два конкурентных
// запроса с пересекающимися интервалами не могут пройти проверку оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: client=%s, vehicle=%s, pickup=%s, return=%s",
		req.ClientID, req.VehicleID,
		req.PickupDatetime.Format(timeLayout), req.ReturnDatetime.Format(timeLayout))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем автомобиль из каталога
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CreateOrder: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateOrder: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	candidate := domain.Interval{Start: req.PickupDatetime, End: req.ReturnDatetime}

	// Переменная для хранения результата
	var result *domain.Order

	// 3. Проверка занятости и вставка - одна сериализуемая транзакция
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Активные заказы автомобиля с блокировкой (FOR UPDATE)
		active, err := uc.orderRepo.GetByVehicleWithFilter(txCtx, domain.VehicleOrdersFilter{
			VehicleID:  req.VehicleID,
			ActiveOnly: true,
		})
		if err != nil {
			uc.logger.Error("CreateOrder: failed to get active orders: %v", err)
			return fmt.Errorf("%w: failed to get active orders: %v", ErrInternal, err)
		}

		// 3.2. Проверяем пересечение с активными заказами
		// Полуоткрытые интервалы: стыковка впритык конфликтом не считается
		if domain.HasConflict(candidate, active) {
			uc.logger.Warn("CreateOrder: slot not available for vehicle=%s, pickup=%s, return=%s",
				req.VehicleID, req.PickupDatetime.Format(timeLayout), req.ReturnDatetime.Format(timeLayout))
			return ErrSlotUnavailable
		}

		// 3.3. Генерируем код подтверждения выдачи
		code, err := uc.otpGenerator.Generate()
		if err != nil {
			uc.logger.Error("CreateOrder: failed to generate OTP: %v", err)
			return fmt.Errorf("%w: failed to generate OTP: %v", ErrInternal, err)
		}

		// 3.4. Создаем заказ со снимком цен каталога
		order := &domain.Order{
			ID:              uuid.New(),
			ClientID:        req.ClientID,
			VehicleID:       req.VehicleID,
			PickupDatetime:  req.PickupDatetime,
			ReturnDatetime:  req.ReturnDatetime,
			PickupLocation:  req.PickupLocation,
			DropoffLocation: req.DropoffLocation,
			OTP:             code,
			RentalAmount: domain.RentalAmountFor(
				req.PickupDatetime, req.ReturnDatetime,
				vehicle.PricePerHour, vehicle.PricePerDay,
			),
			SecurityDeposit: vehicle.SecurityDeposit,
			PaymentStatus:   domain.PaymentPending,
			OrderStatus:     domain.StatusUpcoming,
			Notes:           req.Notes,
		}

		// 3.5. Сохраняем заказ
		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order: %v", err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateOrder: successfully created order id=%s", result.ID)

	// 4. Обновляем витринный кэш статуса (best-effort, заказ уже создан)
	if err := uc.cacheRefresher.Refresh(ctx, req.VehicleID); err != nil {
		uc.logger.Warn("CreateOrder: failed to refresh status cache for vehicle=%s: %v", req.VehicleID, err)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		VehicleID:       result.VehicleID,
		PickupDatetime:  result.PickupDatetime,
		ReturnDatetime:  result.ReturnDatetime,
		PickupLocation:  result.PickupLocation,
		DropoffLocation: result.DropoffLocation,
		OTP:             result.OTP,
		RentalAmount:    result.RentalAmount,
		SecurityDeposit: result.SecurityDeposit,
		PaymentStatus:   string(result.PaymentStatus),
		OrderStatus:     string(result.OrderStatus),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// timeLayout формат времени в логах
const timeLayout = "2006-01-02T15:04:05Z07:00"
