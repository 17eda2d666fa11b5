package availability_calendar

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне календаря
	ErrInvalidRange = errors.New("availability_calendar: invalid range")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден в каталоге
	ErrVehicleNotFound = errors.New("availability_calendar: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("availability_calendar: internal error")
)
