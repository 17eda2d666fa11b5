package vehicleservice

import "github.com/google/uuid"

// Vehicle модель автомобиля из каталога VehicleService
// current_status - денормализованная подсказка для витрины,
// в проверках конфликтов не участвует
type Vehicle struct {
	ID              uuid.UUID  `json:"id"`
	VehicleNumber   string     `json:"vehicle_number"`
	Name            string     `json:"name"`
	Brand           string     `json:"brand"`
	Model           string     `json:"model"`
	VehicleType     string     `json:"vehicle_type"` // Car, Bike, SUV, Scooter, Truck, Other
	Transmission    string     `json:"transmission"`
	FuelType        string     `json:"fuel_type"`
	SeatingCapacity int        `json:"seating_capacity"`
	Location        string     `json:"location"`
	PricePerHour    float64    `json:"price_per_hour"`
	PricePerDay     float64    `json:"price_per_day"`
	SecurityDeposit float64    `json:"security_deposit"`
	LateFeePerHour  float64    `json:"late_fee_per_hour"`
	CurrentStatus   string     `json:"current_status"` // available / booked
	Rating          float64    `json:"rating"`
	TotalTrips      int        `json:"total_trips"`
	OwnerID         *uuid.UUID `json:"owner_id,omitempty"`
}

// ErrorResponse модель ошибки от VehicleService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
