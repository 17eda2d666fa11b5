package availability_calendar

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса календаря занятости
// Если границы не заданы, берется диапазон по умолчанию
// [сегодня, сегодня + 90 дней]
type Request struct {
	VehicleID  uuid.UUID
	RangeStart *time.Time // опционально
	RangeEnd   *time.Time // опционально
}

// Entry занятый интервал календаря
type Entry struct {
	Start  time.Time // Начало интервала
	End    time.Time // Конец интервала (исключительно)
	Status string    // Статус заказа (upcoming / ongoing)
}

// Response модель ответа с календарем занятости
type Response struct {
	VehicleID  uuid.UUID
	RangeStart time.Time
	RangeEnd   time.Time
	Entries    []Entry // Отсортированы по началу интервала
}
