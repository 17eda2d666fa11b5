package check_availability

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на проверку доступности автомобиля
type Request struct {
	VehicleID      uuid.UUID // ID автомобиля
	PickupDatetime time.Time // Начало интервала
	ReturnDatetime time.Time // Конец интервала
}

// Response модель ответа
type Response struct {
	VehicleID uuid.UUID // ID автомобиля
	Available bool      // Свободен ли интервал
}
