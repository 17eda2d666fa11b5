package start_order

// StartOrderRequest HTTP request model
type StartOrderRequest struct {
	OTP string `json:"otp"`
}
