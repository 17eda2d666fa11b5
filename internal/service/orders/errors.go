package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("orders: order not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден в каталоге
	ErrVehicleNotFound = errors.New("orders: vehicle not found")

	// ErrAccessDenied возвращается, когда заказ не принадлежит пользователю
	ErrAccessDenied = errors.New("orders: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене заказа
	ErrAlreadyCancelled = errors.New("orders: order already cancelled")

	// ErrOrderImmutable возвращается при попытке изменить завершенный заказ
	ErrOrderImmutable = errors.New("orders: completed order is immutable")

	// ErrTooLateToCancel возвращается, когда время выдачи уже наступило
	ErrTooLateToCancel = errors.New("orders: too late to cancel")

	// ErrInvalidOTP возвращается при неверном коде подтверждения выдачи
	ErrInvalidOTP = errors.New("orders: invalid OTP")

	// ErrPickupNotReached возвращается при попытке начать аренду до времени выдачи
	ErrPickupNotReached = errors.New("orders: pickup time not reached")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("orders: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("orders: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("orders: internal error")
)
