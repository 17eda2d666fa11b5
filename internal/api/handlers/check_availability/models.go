package check_availability

import (
	"github.com/google/uuid"

	checkAvailability "github.com/vrmarket/VRM-RentalService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VehicleID uuid.UUID `json:"vehicleId"`
	Available bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		VehicleID: resp.VehicleID,
		Available: resp.Available,
	}
}
