package vehicleservice

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден в каталоге
	ErrVehicleNotFound = errors.New("vehicleservice client: vehicle not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("vehicleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("vehicleservice client: invalid response")
)
