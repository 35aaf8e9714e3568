// Package identity implementa el proveedor de identidad: credenciales email/contraseña
// (bcrypt) y sesiones persistentes referenciadas desde un JWT.
//
// El token solo lleva uid y session id; la sesión vive en un SessionStore (Redis en
// producción), por lo que sobrevive reinicios del servicio y puede revocarse.
package identity

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/jwt"
)

// minPasswordLength mínimo que acepta el proveedor.
const minPasswordLength = 6

var _ ports.IdentityProvider = (*Provider)(nil)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionStore guarda las sesiones activas (session id → uid) con vencimiento.
type SessionStore interface {
	Put(ctx context.Context, sessionID, uid string, ttl time.Duration) error
	// Lookup devuelve ok=false si la sesión no existe o venció.
	Lookup(ctx context.Context, sessionID string) (uid string, ok bool, err error)
	Revoke(ctx context.Context, sessionID string) error
}

// Provider implementación de ports.IdentityProvider.
type Provider struct {
	creds    repository.CredentialRepository
	sessions SessionStore
	cfg      Config
	now      func() time.Time
}

// NewProvider construye el proveedor.
func NewProvider(creds repository.CredentialRepository, sessions SessionStore, cfg Config) *Provider {
	return &Provider{creds: creds, sessions: sessions, cfg: cfg, now: time.Now}
}

// SignIn verifica la credencial y abre una sesión nueva.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	email = normalizeEmail(email)
	cred, err := p.creds.GetByEmail(ctx, email)
	if err != nil {
		return nil, asProviderError("sign in", err)
	}
	if cred == nil {
		return nil, ports.NewProviderError("sign in", ports.CodeInvalidCredential, nil)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ports.NewProviderError("sign in", ports.CodeInvalidCredential, nil)
	}

	sessionID := uuid.New().String()
	token, expiresAt, err := jwt.Generate(p.cfg.Secret, cred.UID, sessionID, p.cfg.Issuer, p.cfg.ExpMinutes)
	if err != nil {
		return nil, ports.NewProviderError("sign in", ports.CodeUnavailable, err)
	}
	if err := p.sessions.Put(ctx, sessionID, cred.UID, expiresAt.Sub(p.now())); err != nil {
		return nil, asProviderError("sign in", err)
	}
	return &ports.SignInResult{
		Identity:  ports.Identity{UID: cred.UID, SessionID: sessionID},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// CreateUser crea una credencial nueva sin abrir sesión.
func (p *Provider) CreateUser(ctx context.Context, email, password string) (*ports.Identity, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ports.NewProviderError("create user", ports.CodeInvalidEmail, err)
	}
	if len(password) < minPasswordLength {
		return nil, ports.NewProviderError("create user", ports.CodeWeakPassword, nil)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ports.NewProviderError("create user", ports.CodeUnavailable, err)
	}
	cred := &entity.Credential{
		UID:          uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	}
	if err := p.creds.Create(ctx, cred); err != nil {
		return nil, asProviderError("create user", err)
	}
	return &ports.Identity{UID: cred.UID}, nil
}

// Verify valida firma y vencimiento del token y que la sesión siga activa.
func (p *Provider) Verify(ctx context.Context, token string) (*ports.Identity, error) {
	uid, sessionID, err := jwt.Parse(p.cfg.Secret, token)
	if err != nil {
		return nil, ports.NewProviderError("verify", ports.CodeInvalidCredential, err)
	}
	stored, ok, err := p.sessions.Lookup(ctx, sessionID)
	if err != nil {
		return nil, asProviderError("verify", err)
	}
	if !ok || stored != uid {
		return nil, ports.NewProviderError("verify", ports.CodeSessionRevoked, nil)
	}
	return &ports.Identity{UID: uid, SessionID: sessionID}, nil
}

// SignOut revoca la sesión. Revocar una sesión inexistente no es error.
func (p *Provider) SignOut(ctx context.Context, sessionID string) error {
	if err := p.sessions.Revoke(ctx, sessionID); err != nil {
		return asProviderError("sign out", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// asProviderError conserva el código si el error ya es un ProviderError.
func asProviderError(op string, err error) error {
	if ports.CodeOf(err) != "" {
		return err
	}
	return ports.NewProviderError(op, ports.CodeUnavailable, err)
}
