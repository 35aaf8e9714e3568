package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de sesión más el perfil resuelto.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Actor     EmployeeResponse `json:"actor"`
}

// SessionResponse estado de la sesión actual.
type SessionResponse struct {
	Status string            `json:"status"` // unresolved | unauthenticated | authenticated
	Actor  *EmployeeResponse `json:"actor,omitempty"`
	Notice string            `json:"notice,omitempty"` // INCOMPLETE_REGISTRATION
}
