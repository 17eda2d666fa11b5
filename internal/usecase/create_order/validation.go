package create_order

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.VehicleID == uuid.Nil {
		return fmt.Errorf("%w: vehicleID is required", ErrInvalidInput)
	}

	if req.PickupDatetime.IsZero() {
		return fmt.Errorf("%w: pickupDatetime is required", ErrInvalidInput)
	}

	if req.ReturnDatetime.IsZero() {
		return fmt.Errorf("%w: returnDatetime is required", ErrInvalidInput)
	}

	// Интервал аренды полуоткрытый [pickup, return): возврат строго позже выдачи
	if !req.ReturnDatetime.After(req.PickupDatetime) {
		return fmt.Errorf("%w: returnDatetime must be after pickupDatetime", ErrInvalidInterval)
	}

	if req.PickupLocation == "" {
		return fmt.Errorf("%w: pickupLocation is required", ErrInvalidInput)
	}

	if req.DropoffLocation == "" {
		return fmt.Errorf("%w: dropoffLocation is required", ErrInvalidInput)
	}

	return nil
}
