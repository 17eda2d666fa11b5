package create_order

import (
	"time"

	"github.com/google/uuid"

	createOrder "github.com/vrmarket/VRM-RentalService/internal/usecase/create_order"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	VehicleID       uuid.UUID `json:"vehicleId"`
	PickupDatetime  string    `json:"pickupDatetime"` // "2026-09-01T10:00:00Z"
	ReturnDatetime  string    `json:"returnDatetime"` // "2026-09-03T10:00:00Z"
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	Notes           *string   `json:"notes,omitempty"`
}

// OrderResponse HTTP response model
// Единственный ответ, в котором присутствует OTP
type OrderResponse struct {
	ID              uuid.UUID `json:"id"`
	ClientID        uuid.UUID `json:"clientId"`
	VehicleID       uuid.UUID `json:"vehicleId"`
	PickupDatetime  string    `json:"pickupDatetime"`
	ReturnDatetime  string    `json:"returnDatetime"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	OTP             string    `json:"otp"`
	RentalAmount    float64   `json:"rentalAmount"`
	SecurityDeposit float64   `json:"securityDeposit"`
	PaymentStatus   string    `json:"paymentStatus"`
	OrderStatus     string    `json:"orderStatus"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest(clientID uuid.UUID) (*createOrder.Request, error) {
	pickup, err := time.Parse(time.RFC3339, r.PickupDatetime)
	if err != nil {
		return nil, err
	}

	ret, err := time.Parse(time.RFC3339, r.ReturnDatetime)
	if err != nil {
		return nil, err
	}

	return &createOrder.Request{
		ClientID:        clientID,
		VehicleID:       r.VehicleID,
		PickupDatetime:  pickup,
		ReturnDatetime:  ret,
		PickupLocation:  r.PickupLocation,
		DropoffLocation: r.DropoffLocation,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	return &OrderResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		VehicleID:       resp.VehicleID,
		PickupDatetime:  resp.PickupDatetime.Format(time.RFC3339),
		ReturnDatetime:  resp.ReturnDatetime.Format(time.RFC3339),
		PickupLocation:  resp.PickupLocation,
		DropoffLocation: resp.DropoffLocation,
		OTP:             resp.OTP,
		RentalAmount:    resp.RentalAmount,
		SecurityDeposit: resp.SecurityDeposit,
		PaymentStatus:   resp.PaymentStatus,
		OrderStatus:     resp.OrderStatus,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
