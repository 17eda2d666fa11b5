package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vrmarket/VRM-RentalService/internal/domain"
)

// OrderResponse модель заказа для выдачи наружу
// OTP намеренно отсутствует: код возвращается только при создании заказа
type OrderResponse struct {
	ID                   uuid.UUID            `json:"id"`
	ClientID             uuid.UUID            `json:"clientId"`
	VehicleID            uuid.UUID            `json:"vehicleId"`
	PickupDatetime       time.Time            `json:"pickupDatetime"`
	ReturnDatetime       time.Time            `json:"returnDatetime"`
	ActualReturnDatetime *time.Time           `json:"actualReturnDatetime,omitempty"`
	PickupLocation       string               `json:"pickupLocation"`
	DropoffLocation      string               `json:"dropoffLocation"`
	RentalAmount         float64              `json:"rentalAmount"`
	SecurityDeposit      float64              `json:"securityDeposit"`
	LateFee              float64              `json:"lateFee"`
	PaymentStatus        domain.PaymentStatus `json:"paymentStatus"`
	OrderStatus          domain.OrderStatus   `json:"orderStatus"`
	Notes                *string              `json:"notes,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
}

// FromDomainOrder преобразует доменный заказ в модель ответа
func FromDomainOrder(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:                   o.ID,
		ClientID:             o.ClientID,
		VehicleID:            o.VehicleID,
		PickupDatetime:       o.PickupDatetime,
		ReturnDatetime:       o.ReturnDatetime,
		ActualReturnDatetime: o.ActualReturnDatetime,
		PickupLocation:       o.PickupLocation,
		DropoffLocation:      o.DropoffLocation,
		RentalAmount:         o.RentalAmount,
		SecurityDeposit:      o.SecurityDeposit,
		LateFee:              o.LateFee,
		PaymentStatus:        o.PaymentStatus,
		OrderStatus:          o.OrderStatus,
		Notes:                o.Notes,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

// FromDomainOrders преобразует список доменных заказов
func FromDomainOrders(orders []*domain.Order) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromDomainOrder(o))
	}
	return result
}

// OrderListResponse список заказов
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int              `json:"total"`
}

// CancelOrderResponse результат отмены заказа
type CancelOrderResponse struct {
	OrderID        uuid.UUID          `json:"orderId"`
	OrderStatus    domain.OrderStatus `json:"orderStatus"`
	RefundEligible bool               `json:"refundEligible"`
}

// CompleteOrderResponse результат завершения аренды
type CompleteOrderResponse struct {
	Order   *OrderResponse `json:"order"`
	LateFee float64        `json:"lateFee"`
}
