package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	checkAvailability "github.com/vrmarket/VRM-RentalService/internal/usecase/check_availability"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidDatetime  = "некорректный формат даты и времени, ожидается ISO-8601"
	msgMissingInterval  = "параметры pickup и return обязательны"
	msgInvalidInterval  = "некорректный интервал аренды"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/availability?pickup=...&return=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	pickupStr := r.URL.Query().Get("pickup")
	returnStr := r.URL.Query().Get("return")
	if pickupStr == "" || returnStr == "" {
		h.logger.Warn("GET /vehicles/{id}/availability - Missing interval params: vehicle=%s", vehicleID)
		handlers.RespondBadRequest(w, msgMissingInterval)
		return
	}

	pickup, err := time.Parse(time.RFC3339, pickupStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid pickup datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	ret, err := time.Parse(time.RFC3339, returnStr)
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/availability - Invalid return datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		VehicleID:      vehicleID,
		PickupDatetime: pickup,
		ReturnDatetime: ret,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id}/availability - Vehicle not found: vehicle=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInterval):
			h.logger.Warn("GET /vehicles/{id}/availability - Invalid interval: vehicle=%s", vehicleID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /vehicles/{id}/availability - Failed to check availability: vehicle=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/availability - vehicle=%s, available=%t", vehicleID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
