package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo credenciales del proveedor de identidad sobre PostgreSQL.
type CredentialRepo struct {
	db Querier
}

// NewCredentialRepository construye el adaptador de persistencia para credenciales.
func NewCredentialRepository(db Querier) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Create persiste una credencial nueva. Email duplicado: auth/email-already-in-use.
func (r *CredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	query := `
		INSERT INTO credentials (uid, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, c.UID, c.Email, c.PasswordHash, c.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return ports.NewProviderError("insert credential", ports.CodeEmailAlreadyInUse, err)
		}
		return storeError("insert credential", err)
	}
	return nil
}

// GetByEmail obtiene una credencial; (nil, nil) si no existe.
func (r *CredentialRepo) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var c entity.Credential
	err := r.db.QueryRow(ctx,
		`SELECT uid, email, password_hash, created_at FROM credentials WHERE email = $1`, email).
		Scan(&c.UID, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get credential", err)
	}
	return &c, nil
}
