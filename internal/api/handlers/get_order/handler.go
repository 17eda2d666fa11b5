package get_order

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	"github.com/vrmarket/VRM-RentalService/internal/api/middleware"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders"
)

const (
	msgInvalidOrderID = "некорректный ID заказа"
	msgNotFound       = "заказ не найден"
	msgForbidden      = "доступ запрещен"
	msgUnauthorized   = "требуется авторизация"
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

// Handle GET /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("GET /orders/{id} - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /orders/{id} - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID, requester.ID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{id} - Order not found: order=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /orders/{id} - Access denied: order=%s, requester=%s", orderID, requester.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /orders/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		default:
			h.logger.Error("GET /orders/{id} - Failed to get order: order=%s, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders/{id} - Order retrieved successfully: order=%s, requester=%s",
		orderID, requester.ID)
	handlers.RespondJSON(w, http.StatusOK, order)
}
