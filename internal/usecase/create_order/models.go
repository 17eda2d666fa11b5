package create_order

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на бронирование автомобиля
type Request struct {
	ClientID        uuid.UUID // ID пользователя (из auth middleware)
	VehicleID       uuid.UUID // ID автомобиля
	PickupDatetime  time.Time // Начало аренды
	ReturnDatetime  time.Time // Конец аренды (строго позже начала)
	PickupLocation  string    // Место выдачи
	DropoffLocation string    // Место возврата
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным заказом
// Единственное место, где наружу отдается OTP
type Response struct {
	ID              uuid.UUID // ID созданного заказа
	ClientID        uuid.UUID // ID пользователя
	VehicleID       uuid.UUID // ID автомобиля
	PickupDatetime  time.Time // Начало аренды
	ReturnDatetime  time.Time // Конец аренды
	PickupLocation  string    // Место выдачи
	DropoffLocation string    // Место возврата
	OTP             string    // Код подтверждения выдачи

	// Снимок цен на момент бронирования
	RentalAmount    float64
	SecurityDeposit float64

	PaymentStatus string // Статус оплаты
	OrderStatus   string // Статус заказа

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
