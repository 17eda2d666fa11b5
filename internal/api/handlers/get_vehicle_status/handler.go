package get_vehicle_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	"github.com/vrmarket/VRM-RentalService/internal/service/vehiclestatus"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
)

type Handler struct {
	service VehicleStatusService
	logger  Logger
}

func NewHandler(service VehicleStatusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/status
// Витринный статус, вычисляется из активных заказов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/status - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	status, err := h.service.Get(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, vehiclestatus.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVehicleID)

		default:
			h.logger.Error("GET /vehicles/{id}/status - Failed to get status: vehicle=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/status - vehicle=%s, status=%s", vehicleID, status)
	handlers.RespondJSON(w, http.StatusOK, VehicleStatusResponse{
		VehicleID:     vehicleID,
		CurrentStatus: status,
	})
}
