package dto

// CreateEmployeeRequest entrada para dar de alta un funcionario.
// La contraseña solo se usa para crear la credencial; nunca se guarda en el perfil.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"isAdmin"`
}

// EmployeeResponse salida de un perfil (sin contraseña).
type EmployeeResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
	Role    string `json:"role"`
}

// CreateEmployeeResponse resultado del alta. Reauthenticate es siempre true: la sesión
// de quien creó la cuenta se cierra y debe volver a iniciar sesión.
type CreateEmployeeResponse struct {
	Employee       EmployeeResponse `json:"employee"`
	Reauthenticate bool             `json:"reauthenticate"`
}

// EmployeeListResponse directorio completo, sin orden garantizado.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int                `json:"total"`
	Stale bool               `json:"stale"`
}
