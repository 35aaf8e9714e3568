package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/application/ports"
	"github.com/jhoicas/agenda-api/internal/application/session"
	"github.com/jhoicas/agenda-api/internal/domain"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble del proveedor de identidad: solo registra los cierres de sesión.
// ──────────────────────────────────────────────────────────────────────────────

type signOutRecorder struct {
	ports.IdentityProvider
	signedOut []string
	err       error
}

func (f *signOutRecorder) SignOut(_ context.Context, sessionID string) error {
	f.signedOut = append(f.signedOut, sessionID)
	return f.err
}

func TestResolve_SinIdentidad(t *testing.T) {
	idp := &signOutRecorder{}
	r := session.NewResolver(memory.NewEmployeeRepository(), idp, nil)

	for _, id := range []*ports.Identity{nil, {SessionID: "s1"}} {
		s, err := r.Resolve(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, session.StatusUnauthenticated, s.Status)
		assert.Nil(t, s.Actor)
	}
	assert.Empty(t, idp.signedOut, "sin identidad no hay efectos")
}

func TestResolve_ConPerfil(t *testing.T) {
	repo := memory.NewEmployeeRepository(&entity.Employee{ID: "u1", Name: "Ana", Email: "ana@autocar.com", IsAdmin: true})
	idp := &signOutRecorder{}
	r := session.NewResolver(repo, idp, nil)

	s, err := r.Resolve(context.Background(), &ports.Identity{UID: "u1", SessionID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, session.StatusAuthenticated, s.Status)
	assert.True(t, s.Authenticated())
	require.NotNil(t, s.Actor)
	assert.Equal(t, "u1", s.Actor.ID)
	assert.Equal(t, "Ana", s.Actor.Name)
	assert.True(t, s.Actor.IsAdmin)
	assert.Equal(t, "s1", s.SessionID)
	assert.Empty(t, idp.signedOut)
}

func TestResolve_SinPerfilCierraSesion(t *testing.T) {
	idp := &signOutRecorder{}
	r := session.NewResolver(memory.NewEmployeeRepository(), idp, nil)

	s, err := r.Resolve(context.Background(), &ports.Identity{UID: "huérfano", SessionID: "s9"})

	assert.ErrorIs(t, err, domain.ErrIncompleteRegistration)
	assert.Equal(t, session.StatusUnauthenticated, s.Status)
	assert.Nil(t, s.Actor)
	assert.Equal(t, domain.KindIncompleteRegistration, s.Notice)
	assert.Equal(t, []string{"s9"}, idp.signedOut)
}

func TestResolve_FalloDeLecturaCierraSesion(t *testing.T) {
	repo := memory.NewEmployeeRepository(&entity.Employee{ID: "u1", Name: "Ana"})
	repo.GetErr = errors.New("almacén caído")
	idp := &signOutRecorder{err: errors.New("proveedor caído")}
	r := session.NewResolver(repo, idp, nil)

	s, err := r.Resolve(context.Background(), &ports.Identity{UID: "u1", SessionID: "s1"})

	require.NoError(t, err, "un fallo de lectura no se reporta como registro incompleto")
	assert.Equal(t, session.StatusUnauthenticated, s.Status)
	assert.Equal(t, []string{"s1"}, idp.signedOut)
}

func TestAuthorize(t *testing.T) {
	admin := session.Session{Status: session.StatusAuthenticated, Actor: &entity.Employee{ID: "a", IsAdmin: true}}
	employee := session.Session{Status: session.StatusAuthenticated, Actor: &entity.Employee{ID: "e"}}
	anonymous := session.Session{Status: session.StatusUnauthenticated}
	unresolved := session.Session{Status: session.StatusUnresolved}

	assert.Equal(t, session.Allow, session.Authorize(admin, session.RequireAdmin))
	assert.Equal(t, session.Allow, session.Authorize(admin, session.RequireEmployee))
	assert.Equal(t, session.Allow, session.Authorize(employee, session.RequireEmployee))
	assert.Equal(t, session.RedirectDefault, session.Authorize(employee, session.RequireAdmin))
	assert.Equal(t, session.RedirectLogin, session.Authorize(anonymous, session.RequireEmployee))
	assert.Equal(t, session.RedirectLogin, session.Authorize(unresolved, session.RequireAdmin))
}
