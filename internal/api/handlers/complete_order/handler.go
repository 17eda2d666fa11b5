package complete_order

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
	msgInvalidOrderID    = "некорректный ID заказа"
	msgNotFound          = "заказ не найден"
	msgVehicleNotFound   = "автомобиль не найден"
	msgForbidden         = "доступ запрещен"
	msgAlreadyCancelled  = "заказ отменен"
	msgOrderImmutable    = "заказ уже завершен"
	msgInvalidTransition = "аренда еще не начата"
	msgUnauthorized      = "требуется авторизация"
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

// Handle POST /api/v1/orders/{orderId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("POST /orders/{id}/complete - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /orders/{id}/complete - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Complete(r.Context(), orderID, requester.ID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("POST /orders/{id}/complete - Order not found: order=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrVehicleNotFound):
			h.logger.Warn("POST /orders/{id}/complete - Vehicle not found for order=%s", orderID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("POST /orders/{id}/complete - Access denied: order=%s, requester=%s",
				orderID, requester.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrAlreadyCancelled):
			h.logger.Warn("POST /orders/{id}/complete - Order cancelled: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, orders.ErrOrderImmutable):
			h.logger.Warn("POST /orders/{id}/complete - Order already completed: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgOrderImmutable)

		case errors.Is(err, orders.ErrInvalidTransition):
			h.logger.Warn("POST /orders/{id}/complete - Invalid transition: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("POST /orders/{id}/complete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		default:
			h.logger.Error("POST /orders/{id}/complete - Failed to complete order: order=%s, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/{id}/complete - Rental completed successfully: order=%s, late_fee=%.2f",
		orderID, result.LateFee)
	handlers.RespondJSON(w, http.StatusOK, result)
}
