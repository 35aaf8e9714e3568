package ports

import (
	"context"
	"time"
)

// Identity identidad autenticada emitida por el proveedor.
type Identity struct {
	UID       string // subject; coincide con el ID del perfil Employee
	SessionID string
}

// SignInResult sesión nueva devuelta por SignIn.
type SignInResult struct {
	Identity  Identity
	Token     string
	ExpiresAt time.Time
}

// IdentityProvider define el puerto de salida hacia el proveedor de identidad
// (credenciales email/contraseña con sesiones persistentes).
// Los errores de las implementaciones son *ProviderError; la aplicación los traduce
// con ToDomain y nunca los expone a la capa de presentación.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*SignInResult, error)
	// CreateUser crea una credencial nueva y devuelve su uid (sin abrir sesión).
	CreateUser(ctx context.Context, email, password string) (*Identity, error)
	// Verify valida el token y que la sesión siga activa.
	Verify(ctx context.Context, token string) (*Identity, error)
	SignOut(ctx context.Context, sessionID string) error
}
