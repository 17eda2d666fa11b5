package cancel_order

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
	msgInvalidOrderID   = "некорректный ID заказа"
	msgNotFound         = "заказ не найден"
	msgForbidden        = "доступ запрещен"
	msgAlreadyCancelled = "заказ уже отменен"
	msgOrderImmutable   = "завершенный заказ нельзя изменить"
	msgTooLateToCancel  = "время выдачи уже наступило, отмена невозможна"
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

// Handle PATCH /api/v1/orders/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("PATCH /orders/{id}/cancel - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /orders/{id}/cancel - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Cancel(r.Context(), orderID, requester.ID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{id}/cancel - Order not found: order=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("PATCH /orders/{id}/cancel - Access denied: order=%s, requester=%s",
				orderID, requester.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /orders/{id}/cancel - Already cancelled: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, orders.ErrOrderImmutable):
			h.logger.Warn("PATCH /orders/{id}/cancel - Order immutable: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgOrderImmutable)

		case errors.Is(err, orders.ErrTooLateToCancel):
			h.logger.Warn("PATCH /orders/{id}/cancel - Too late to cancel: order=%s", orderID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgTooLateToCancel)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("PATCH /orders/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		default:
			h.logger.Error("PATCH /orders/{id}/cancel - Failed to cancel order: order=%s, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{id}/cancel - Order cancelled successfully: order=%s, refund_eligible=%t",
		orderID, result.RefundEligible)
	handlers.RespondJSON(w, http.StatusOK, result)
}
