package get_user_orders

import (
	"errors"
	"net/http"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	"github.com/vrmarket/VRM-RentalService/internal/api/middleware"
	"github.com/vrmarket/VRM-RentalService/internal/domain"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders"
	"github.com/vrmarket/VRM-RentalService/internal/service/orders/models"
)

const (
	msgInvalidStatus = "некорректный статус заказа"
	msgUnauthorized  = "требуется авторизация"
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

// Handle GET /api/v1/orders?status=...
// Список заказов текущего пользователя, новые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /orders - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter := domain.UserOrdersFilter{ClientID: requester.ID}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status, err := domain.ParseOrderStatus(statusStr)
		if err != nil {
			h.logger.Warn("GET /orders - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		filter.Status = &status
	}

	list, err := h.service.GetUserOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("GET /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /orders - Failed to get orders: requester=%s, error=%v",
				requester.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders - Orders retrieved successfully: requester=%s, count=%d",
		requester.ID, len(list))
	handlers.RespondJSON(w, http.StatusOK, models.OrderListResponse{
		Orders: list,
		Total:  len(list),
	})
}
