package get_vehicle_status

import "github.com/google/uuid"

// VehicleStatusResponse HTTP response model
type VehicleStatusResponse struct {
	VehicleID     uuid.UUID `json:"vehicleId"`
	CurrentStatus string    `json:"currentStatus"`
}
