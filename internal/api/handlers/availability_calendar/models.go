package availability_calendar

import (
	"time"

	"github.com/google/uuid"

	availabilityCalendar "github.com/vrmarket/VRM-RentalService/internal/usecase/availability_calendar"
)

// CalendarEntry занятый интервал в ответе
type CalendarEntry struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	VehicleID  uuid.UUID       `json:"vehicleId"`
	RangeStart string          `json:"rangeStart"`
	RangeEnd   string          `json:"rangeEnd"`
	Booked     []CalendarEntry `json:"booked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availabilityCalendar.Response) *CalendarResponse {
	booked := make([]CalendarEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		booked = append(booked, CalendarEntry{
			Start:  e.Start.Format(time.RFC3339),
			End:    e.End.Format(time.RFC3339),
			Status: e.Status,
		})
	}

	return &CalendarResponse{
		VehicleID:  resp.VehicleID,
		RangeStart: resp.RangeStart.Format(time.RFC3339),
		RangeEnd:   resp.RangeEnd.Format(time.RFC3339),
		Booked:     booked,
	}
}
