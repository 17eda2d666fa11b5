package check_availability

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале запроса
	ErrInvalidInterval = errors.New("check_availability: invalid rental interval")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден в каталоге
	ErrVehicleNotFound = errors.New("check_availability: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
