package entity

import "time"

// Roles derivados del flag IsAdmin.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee es el perfil local de un funcionario. ID coincide con el uid de la identidad.
// La contraseña nunca forma parte del perfil.
type Employee struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

// Role devuelve el rol efectivo del funcionario.
func (e *Employee) Role() string {
	if e != nil && e.IsAdmin {
		return RoleAdmin
	}
	return RoleEmployee
}

// Credential credencial email/contraseña del proveedor de identidad.
type Credential struct {
	UID          string
	Email        string
	PasswordHash string // bcrypt
	CreatedAt    time.Time
}
