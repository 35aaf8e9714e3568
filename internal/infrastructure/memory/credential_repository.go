package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo credenciales en memoria, indexadas por email.
type CredentialRepo struct {
	mu      sync.RWMutex
	byEmail map[string]entity.Credential
}

// NewCredentialRepository construye el repositorio vacío.
func NewCredentialRepository() *CredentialRepo {
	return &CredentialRepo{byEmail: make(map[string]entity.Credential)}
}

func (r *CredentialRepo) Create(_ context.Context, c *entity.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[c.Email]; ok {
		return ports.NewProviderError("insert credential", ports.CodeEmailAlreadyInUse, nil)
	}
	r.byEmail[c.Email] = *c
	return nil
}

func (r *CredentialRepo) GetByEmail(_ context.Context, email string) (*entity.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return &c, nil
}
