package start_order

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
	msgInvalidOrderID     = "некорректный ID заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "заказ не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidOTP         = "неверный код подтверждения"
	msgPickupNotReached   = "время выдачи еще не наступило"
	msgAlreadyCancelled   = "заказ отменен"
	msgOrderImmutable     = "заказ уже завершен"
	msgInvalidTransition  = "аренда уже начата"
	msgUnauthorized       = "требуется авторизация"
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

// Handle POST /api/v1/orders/{orderId}/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := uuid.Parse(vars["orderId"])
	if err != nil {
		h.logger.Warn("POST /orders/{id}/start - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /orders/{id}/start - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req StartOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders/{id}/start - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	order, err := h.service.Start(r.Context(), orderID, requester.ID, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("POST /orders/{id}/start - Order not found: order=%s", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("POST /orders/{id}/start - Access denied: order=%s, requester=%s",
				orderID, requester.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, orders.ErrInvalidOTP):
			h.logger.Warn("POST /orders/{id}/start - Invalid OTP: order=%s", orderID)
			handlers.RespondForbidden(w, msgInvalidOTP)

		case errors.Is(err, orders.ErrPickupNotReached):
			h.logger.Warn("POST /orders/{id}/start - Pickup time not reached: order=%s", orderID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPickupNotReached)

		case errors.Is(err, orders.ErrAlreadyCancelled):
			h.logger.Warn("POST /orders/{id}/start - Order cancelled: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyCancelled)

		case errors.Is(err, orders.ErrOrderImmutable):
			h.logger.Warn("POST /orders/{id}/start - Order completed: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgOrderImmutable)

		case errors.Is(err, orders.ErrInvalidTransition):
			h.logger.Warn("POST /orders/{id}/start - Invalid transition: order=%s", orderID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("POST /orders/{id}/start - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /orders/{id}/start - Failed to start order: order=%s, error=%v",
				orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/{id}/start - Rental started successfully: order=%s, requester=%s",
		orderID, requester.ID)
	handlers.RespondJSON(w, http.StatusOK, order)
}
