package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/application/session"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
)

// LocalSession clave de Locals con la session.Session resuelta.
const LocalSession = "session"

// TokenVerifier valida el Bearer token contra el proveedor de identidad.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*ports.Identity, error)
}

// SessionResolver convierte la identidad en sesión (perfil + rol).
type SessionResolver interface {
	Resolve(ctx context.Context, id *ports.Identity) (session.Session, error)
}

// AuthMiddleware exige sesión autenticada. Valida el Bearer token, resuelve el perfil en
// cada request y deja la sesión en c.Locals. Identidad sin perfil: 401
// INCOMPLETE_REGISTRATION (la sesión ya quedó revocada por el resolver).
func AuthMiddleware(verifier TokenVerifier, resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := bearerToken(c)
		if err != nil {
			return writeError(c, err)
		}
		id, err := verifier.Verify(c.Context(), token)
		if err != nil {
			return writeError(c, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err))
		}
		s, err := resolver.Resolve(c.Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		if !s.Authenticated() {
			return writeError(c, domain.ErrUnauthorized)
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// OptionalAuth resuelve la sesión si hay token, sin rechazar la request. Sin token o con
// token inválido la sesión queda Unauthenticated. Si la identidad no tiene perfil la
// sesión lleva el aviso INCOMPLETE_REGISTRATION.
func OptionalAuth(verifier TokenVerifier, resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := session.Session{Status: session.StatusUnauthenticated}
		if token, err := bearerToken(c); err == nil {
			if id, err := verifier.Verify(c.Context(), token); err == nil {
				resolved, err := resolver.Resolve(c.Context(), id)
				if err != nil {
					resolved = session.Session{Status: session.StatusUnauthenticated, Notice: domain.KindOf(err)}
				}
				s = resolved
			}
		}
		c.Locals(LocalSession, s)
		return c.Next()
	}
}

// RequireAccess aplica session.Authorize. Debe usarse DESPUÉS de AuthMiddleware.
func RequireAccess(req session.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch session.Authorize(GetSession(c), req) {
		case session.RedirectLogin:
			return writeError(c, domain.ErrUnauthorized)
		case session.RedirectDefault:
			return writeError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto; Unresolved si el middleware no corrió.
func GetSession(c *fiber.Ctx) session.Session {
	s, ok := c.Locals(LocalSession).(session.Session)
	if !ok {
		return session.Session{Status: session.StatusUnresolved}
	}
	return s
}

// GetActor devuelve el funcionario autenticado, o nil.
func GetActor(c *fiber.Ctx) *entity.Employee {
	return GetSession(c).Actor
}

func bearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", domain.ErrMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("%w: formato Bearer <token>", domain.ErrInvalidToken)
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", domain.ErrMissingToken
	}
	return token, nil
}
