package create_order

import (
	"errors"
	"net/http"

	"github.com/vrmarket/VRM-RentalService/internal/api/handlers"
	"github.com/vrmarket/VRM-RentalService/internal/api/middleware"
	createOrder "github.com/vrmarket/VRM-RentalService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDatetime    = "некорректный формат даты и времени, ожидается ISO-8601"
	msgInvalidInterval    = "некорректный интервал аренды"
	msgVehicleNotFound    = "автомобиль не найден"
	msgSlotUnavailable    = "автомобиль занят на выбранный интервал"
	msgUnauthorized       = "требуется авторизация"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /orders - Missing requester in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(requester.ID)
	if err != nil {
		h.logger.Warn("POST /orders - Failed to parse datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrSlotUnavailable):
			h.logger.Warn("POST /orders - Slot unavailable: client=%s, vehicle=%s",
				requester.ID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createOrder.ErrVehicleNotFound):
			h.logger.Warn("POST /orders - Vehicle not found: vehicle=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createOrder.ErrInvalidInterval):
			h.logger.Warn("POST /orders - Invalid interval: client=%s, vehicle=%s",
				requester.ID, req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /orders - Failed to create order: client=%s, vehicle=%s, error=%v",
				requester.ID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /orders - Order created successfully: order=%s, client=%s, vehicle=%s",
		result.ID, requester.ID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
