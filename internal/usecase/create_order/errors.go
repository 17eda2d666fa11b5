package create_order

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале аренды
	// (возврат не позже выдачи)
	ErrInvalidInterval = errors.New("create_order: invalid rental interval")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден в каталоге
	ErrVehicleNotFound = errors.New("create_order: vehicle not found")

	// ErrSlotUnavailable возвращается, когда интервал пересекается
	// с активным заказом этого автомобиля
	ErrSlotUnavailable = errors.New("create_order: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)
