// Package session resuelve la identidad autenticada a un actor (perfil local) y aplica
// el control de acceso por rol. La resolución se hace en cada request y no se cachea.
package session

import (
	"context"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

// Status estado de la sesión.
type Status string

const (
	StatusUnresolved      Status = "unresolved"
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// Session resultado de la resolución. Actor solo está presente si Status es Authenticated.
// Notice acompaña a una sesión Unauthenticated cuando hay que avisar al usuario
// (INCOMPLETE_REGISTRATION).
type Session struct {
	Status    Status
	Actor     *entity.Employee
	SessionID string
	Notice    domain.ErrorKind
}

// Authenticated indica si hay un actor resuelto.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.Actor != nil
}

// Resolver convierte identidades en sesiones.
type Resolver struct {
	employees repository.EmployeeRepository
	identity  ports.IdentityProvider
	log       *logger.Logger
}

// NewResolver construye el resolver.
func NewResolver(employees repository.EmployeeRepository, identity ports.IdentityProvider, log *logger.Logger) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{employees: employees, identity: identity, log: log.Named("session")}
}

// Resolve aplica las tres reglas:
//   - sin identidad: Unauthenticated, sin efectos;
//   - identidad con perfil: Authenticated con actor {ID: uid, ...perfil};
//   - identidad sin perfil (o fallo al leerlo): cierra la sesión del proveedor y devuelve
//     Unauthenticated. Si el perfil no existe el error es ErrIncompleteRegistration.
func (r *Resolver) Resolve(ctx context.Context, id *ports.Identity) (Session, error) {
	if id == nil || id.UID == "" {
		return Session{Status: StatusUnauthenticated}, nil
	}
	profile, err := r.employees.GetByID(ctx, id.UID)
	if err != nil {
		r.log.Warn().Err(err).Str("uid", id.UID).Msg("lectura de perfil fallida, cerrando sesión")
		r.forceSignOut(ctx, id.SessionID)
		return Session{Status: StatusUnauthenticated}, nil
	}
	if profile == nil {
		r.log.Warn().Str("uid", id.UID).Msg("identidad sin perfil, cerrando sesión")
		r.forceSignOut(ctx, id.SessionID)
		return Session{Status: StatusUnauthenticated, Notice: domain.KindIncompleteRegistration}, domain.ErrIncompleteRegistration
	}
	actor := *profile
	actor.ID = id.UID
	return Session{Status: StatusAuthenticated, Actor: &actor, SessionID: id.SessionID}, nil
}

func (r *Resolver) forceSignOut(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := r.identity.SignOut(ctx, sessionID); err != nil {
		r.log.Error().Err(err).Str("session_id", sessionID).Msg("no se pudo cerrar la sesión")
	}
}

// Requirement nivel de acceso que declara una ruta.
type Requirement int

const (
	RequireEmployee Requirement = iota
	RequireAdmin
)

// Decision resultado de Authorize.
type Decision int

const (
	Allow           Decision = iota
	RedirectLogin            // sin sesión: 401
	RedirectDefault          // sesión sin el rol requerido: 403
)

// Authorize decide el acceso. Un admin cumple también RequireEmployee.
func Authorize(s Session, req Requirement) Decision {
	if !s.Authenticated() {
		return RedirectLogin
	}
	if req == RequireAdmin && !s.Actor.IsAdmin {
		return RedirectDefault
	}
	return Allow
}
