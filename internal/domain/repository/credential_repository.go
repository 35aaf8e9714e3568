package repository

import (
	"context"

	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// CredentialRepository persiste las credenciales del proveedor de identidad.
type CredentialRepository interface {
	// Create devuelve un error con código auth/email-already-in-use si el email existe.
	Create(ctx context.Context, credential *entity.Credential) error
	// GetByEmail devuelve (nil, nil) si no existe; el email ya viene normalizado.
	GetByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
