package domain

// Default values for the availability calendar
const (
	// DefaultCalendarRangeDays длина диапазона календаря по умолчанию,
	// когда вызывающий не задал границы
	DefaultCalendarRangeDays = 90
)

// Vehicle display status values (денормализованный кэш, не источник истины)
const (
	VehicleStatusAvailable = "available"
	VehicleStatusBooked    = "booked"
)
