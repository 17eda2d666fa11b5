package get_vehicle_orders

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	"github.com/vrmarket/VRM-RentalService/internal/api/middleware"
	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidDatetime  = "некорректный формат даты и времени, ожидается ISO-8601"
	msgInvalidParams    = "некорректные параметры запроса"
	msgForbidden        = "доступ запрещен"
	msgUnauthorized     = "требуется авторизация"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/vehicles/{vehicleId}/orders?from=...&to=...&active_only=...
// Доступно только владельцу автомобиля
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	vehicleID, err := uuid.Parse(vars["vehicleId"])
	if err != nil {
		h.logger.Warn("GET /vehicles/{id}/orders - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /vehicles/{id}/orders - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter := domain.VehicleOrdersFilter{VehicleID: vehicleID}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.logger.Warn("GET /vehicles/{id}/orders - Invalid from datetime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDatetime)
			return
		}
		filter.RangeStart = &from
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.logger.Warn("GET /vehicles/{id}/orders - Invalid to datetime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDatetime)
			return
		}
		filter.RangeEnd = &to
	}

	if activeStr := r.URL.Query().Get("active_only"); activeStr != "" {
		activeOnly, err := strconv.ParseBool(activeStr)
		if err != nil {
			h.logger.Warn("GET /vehicles/{id}/orders - Invalid active_only param: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		filter.ActiveOnly = activeOnly
	}

	list, err := h.service.GetVehicleOrders(r.Context(), filter, requester.ID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /vehicles/{id}/orders - Access denied: vehicle=%s, requester=%s",
				vehicleID, requester.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /vehicles/{id}/orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /vehicles/{id}/orders - Failed to get orders: vehicle=%s, error=%v",
				vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /vehicles/{id}/orders - Orders retrieved successfully: vehicle=%s, count=%d",
		vehicleID, len(list))
	handlers.RespondJSON(w, http.StatusOK, models.OrderListResponse{
		Orders: list,
		Total:  len(list),
	})
}
