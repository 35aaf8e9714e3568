package auth

import (
	"context"
	"strings"

	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/application/session"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

// AuthUseCase casos de uso de autenticación: login, logout y estado de sesión.
type AuthUseCase struct {
	identity ports.IdentityProvider
	resolver *session.Resolver
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(identity ports.IdentityProvider, resolver *session.Resolver, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{identity: identity, resolver: resolver, log: log.Named("auth")}
}

// Login autentica contra el proveedor y resuelve el perfil. Cualquier motivo del
// proveedor se reduce a ErrUnauthorized. Una identidad sin perfil devuelve
// ErrIncompleteRegistration y la sesión recién abierta queda cerrada.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	res, err := uc.identity.SignIn(ctx, email, in.Password)
	if err != nil {
		uc.log.Debug().Str("code", ports.CodeOf(err)).Msg("login rechazado")
		return nil, domain.ErrUnauthorized
	}
	s, err := uc.resolver.Resolve(ctx, &res.Identity)
	if err != nil {
		return nil, err
	}
	if !s.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return &dto.LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		Actor:     dto.FromEmployee(s.Actor),
	}, nil
}

// Logout cierra la sesión del proveedor. Un fallo del proveedor solo se registra.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := uc.identity.SignOut(ctx, sessionID); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("logout fallido en el proveedor")
	}
}

// Describe arma la respuesta de estado de sesión.
func (uc *AuthUseCase) Describe(s session.Session) dto.SessionResponse {
	out := dto.SessionResponse{Status: string(s.Status), Notice: string(s.Notice)}
	if s.Authenticated() {
		actor := dto.FromEmployee(s.Actor)
		out.Actor = &actor
	}
	return out
}
