package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle status of a rental order
type OrderStatus string

const (
	StatusUpcoming  OrderStatus = "upcoming"
	StatusOngoing   OrderStatus = "ongoing"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order represents a vehicle rental order in the system
type Order struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	VehicleID uuid.UUID

	// Аренда: полуоткрытый интервал [PickupDatetime, ReturnDatetime)
	PickupDatetime       time.Time
	ReturnDatetime       time.Time
	ActualReturnDatetime *time.Time // заполняется только при завершении

	PickupLocation  string
	DropoffLocation string

	// Код подтверждения выдачи, генерируется один раз при создании
	// и никогда не меняется; в списках заказов не отдается
	OTP string

	// Снимок цен автомобиля на момент бронирования
	// Последующие изменения цен в каталоге прошлые заказы не затрагивают
	RentalAmount    float64
	SecurityDeposit float64
	LateFee         float64

	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// allowedTransitions граф допустимых переходов статуса заказа
// Терминальные статусы (completed, cancelled) переходов не имеют
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusUpcoming:  {StatusOngoing, StatusCancelled},
	StatusOngoing:   {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether from -> to is a legal lifecycle transition
func CanTransition(from, to OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsActive returns true if the order still occupies its time slot
// (participates in conflict checking)
func (o *Order) IsActive() bool {
	return o.OrderStatus == StatusUpcoming || o.OrderStatus == StatusOngoing
}

// IsTerminal returns true if the order reached a terminal status
func (o *Order) IsTerminal() bool {
	return o.OrderStatus == StatusCompleted || o.OrderStatus == StatusCancelled
}

// CanBeCancelled returns true if the order may still be cancelled
// Отменить можно только предстоящий заказ, выдача по которому еще не началась
func (o *Order) CanBeCancelled(now time.Time) bool {
	return o.OrderStatus == StatusUpcoming && o.PickupDatetime.After(now)
}

// Interval returns the booked half-open interval of the order
func (o *Order) Interval() Interval {
	return Interval{Start: o.PickupDatetime, End: o.ReturnDatetime}
}

// LateFeeFor вычисляет штраф за просрочку возврата
// Каждый начатый час просрочки тарифицируется полностью
func LateFeeFor(returnDatetime, actualReturn time.Time, lateFeePerHour float64) float64 {
	if !actualReturn.After(returnDatetime) {
		return 0
	}
	hoursLate := math.Ceil(actualReturn.Sub(returnDatetime).Hours())
	return hoursLate * lateFeePerHour
}

// RentalAmountFor вычисляет стоимость аренды на момент бронирования
// Интервалы от суток тарифицируются посуточно (каждые начатые сутки),
// более короткие - почасово (каждый начатый час)
func RentalAmountFor(pickup, ret time.Time, pricePerHour, pricePerDay float64) float64 {
	hours := math.Ceil(ret.Sub(pickup).Hours())
	if hours >= 24 {
		days := math.Ceil(hours / 24)
		return days * pricePerDay
	}
	return hours * pricePerHour
}

// ParseOrderStatus validates and converts a raw string into an OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// ActiveStatuses статусы заказов, занимающих временной слот
var ActiveStatuses = []OrderStatus{
	StatusUpcoming,
	StatusOngoing,
}

// UserOrdersFilter фильтр для получения заказов пользователя
type UserOrdersFilter struct {
	ClientID uuid.UUID
	Status   *OrderStatus // опционально
}

// VehicleOrdersFilter фильтр для получения заказов по автомобилю
type VehicleOrdersFilter struct {
	VehicleID  uuid.UUID
	RangeStart *time.Time // пересечение с диапазоном (опционально)
	RangeEnd   *time.Time
	ActiveOnly bool // только upcoming/ongoing
}
