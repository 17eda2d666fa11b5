package availability_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
	vehicleClient "github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
)

// UseCase use case построения календаря занятости автомобиля
// Read-only проекция над теми же заказами, которые мутирует
// бронирование; хранилище заказов никогда не изменяет
type UseCase struct {
	orderRepo     OrderRepository
	vehicleClient VehicleServiceClient
	timeProvider  TimeProvider
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
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute строит календарь занятых интервалов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация и вычисление диапазона
	if req.VehicleID == uuid.Nil {
		return nil, fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	rangeStart, rangeEnd, err := resolveRange(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("AvailabilityCalendar: range validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("AvailabilityCalendar: vehicle=%s, range=[%s, %s]",
		req.VehicleID, rangeStart, rangeEnd)

	// 2. Проверяем, что автомобиль существует
	if _, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("AvailabilityCalendar: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("AvailabilityCalendar: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Активные заказы, пересекающие диапазон (отсортированы по началу)
	orders, err := uc.orderRepo.GetByVehicleWithFilter(ctx, domain.VehicleOrdersFilter{
		VehicleID:  req.VehicleID,
		RangeStart: &rangeStart,
		RangeEnd:   &rangeEnd,
		ActiveOnly: true,
	})
	if err != nil {
		uc.logger.Error("AvailabilityCalendar: failed to get orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get orders: %v", ErrInternal, err)
	}

	entries := make([]Entry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, Entry{
			Start:  o.PickupDatetime,
			End:    o.ReturnDatetime,
			Status: string(o.OrderStatus),
		})
	}

	uc.logger.Info("AvailabilityCalendar: vehicle=%s, %d booked intervals", req.VehicleID, len(entries))

	return &Response{
		VehicleID:  req.VehicleID,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Entries:    entries,
	}, nil
}

// resolveRange вычисляет границы календаря
// Обе границы не заданы - диапазон по умолчанию от начала сегодняшнего
// дня; заданный вручную диапазон обязан быть непустым
func resolveRange(req *Request, now time.Time) (time.Time, time.Time, error) {
	if req.RangeStart == nil && req.RangeEnd == nil {
		start := startOfDay(now)
		return start, start.AddDate(0, 0, domain.DefaultCalendarRangeDays), nil
	}

	if req.RangeStart == nil || req.RangeEnd == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: both range bounds must be provided", ErrInvalidRange)
	}

	if !req.RangeStart.Before(*req.RangeEnd) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rangeStart must be before rangeEnd", ErrInvalidRange)
	}

	return *req.RangeStart, *req.RangeEnd, nil
}

// startOfDay обнуляет время, оставляя только дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
