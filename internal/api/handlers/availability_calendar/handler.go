package availability_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	availabilityCalendar "github.com/vrmarket/VRM-RentalService/internal/usecase/availability_calendar"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidDatetime  = "некорректный формат даты и времени, ожидается ISO-8601"
	msgInvalidRange     = "некорректный диапазон календаря"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	useCase AvailabilityCalendarUseCase
	logger  Logger
}

func NewHandler(useCase AvailabilityCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/calendar?from=...&to=...
// Без параметров выдается диапазон по умолчанию (90 дней от сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/calendar - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	req := &availabilityCalendar.Request{VehicleID: vehicleID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /vehicles/{id}/calendar - Invalid from datetime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDatetime)
			return
		}
		req.RangeStart = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /vehicles/{id}/calendar - Invalid to datetime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDatetime)
			return
		}
		req.RangeEnd = &to
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityCalendar.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/calendar - Vehicle not found: vehicle=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, availabilityCalendar.ErrInvalidRange):
			h.logger.Warn("GET /vehicles/{id}/calendar - Invalid range: vehicle=%s", vehicleID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, availabilityCalendar.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /vehicles/{id}/calendar - Failed to build calendar: vehicle=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/calendar - vehicle=%s, %d booked intervals",
		vehicleID, len(result.Entries))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
