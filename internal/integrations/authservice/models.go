package authservice

import "github.com/google/uuid"

// Requester модель пользователя, разрешенного по токену из AuthService
type Requester struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	UserType string    `json:"user_type"` // Client / Renter / Admin
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
