package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agenda-api/internal/application/analytics"
	"github.com/jhoicas/agenda-api/internal/application/auth"
	"github.com/jhoicas/agenda-api/internal/application/report"
	"github.com/jhoicas/agenda-api/internal/application/session"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
	"github.com/jhoicas/agenda-api/internal/domain/entity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/identity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/memory"
	"github.com/jhoicas/agenda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/agenda-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/agenda-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "agenda-test"
	testPassword  = "secreto1"
)

// testEnv aplicación completa sobre almacenes en memoria.
type testEnv struct {
	app          *fiber.App
	idp          *identity.Provider
	resolver     *session.Resolver
	employees    *memory.EmployeeRepo
	appointments *memory.AppointmentRepo
	sessions     *memory.SessionStore
}

func newTestEnv(t *testing.T, limiter *apphttp.RateLimiter) *testEnv {
	t.Helper()
	sessions := memory.NewSessionStore()
	employees := memory.NewEmployeeRepository()
	appointments := memory.NewAppointmentRepository()
	idp := identity.NewProvider(memory.NewCredentialRepository(), sessions, identity.Config{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer,
	})
	resolver := session.NewResolver(employees, idp, nil)
	appointmentUC := usecase.NewAppointmentUseCase(appointments, nil)

	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(idp, resolver, nil),
		AppointmentUC: appointmentUC,
		EmployeeUC:    usecase.NewEmployeeUseCase(employees, idp, 0, nil),
		DashboardUC:   analytics.NewDashboardUseCase(appointmentUC),
		ReportUC:      report.NewReportUseCase(appointmentUC, pdf.NewMarotoAgendaGenerator("AUTOCAR"), xlsx.NewExporter()),
		Verifier:      idp,
		Resolver:      resolver,
		LoginLimiter:  limiter,
	})
	return &testEnv{
		app: app, idp: idp, resolver: resolver,
		employees: employees, appointments: appointments, sessions: sessions,
	}
}

// register crea credencial y perfil; devuelve el uid.
func (e *testEnv) register(t *testing.T, name, email string, admin bool) string {
	t.Helper()
	id, err := e.idp.CreateUser(context.Background(), email, testPassword)
	require.NoError(t, err)
	require.NoError(t, e.employees.Set(context.Background(), &entity.Employee{ID: id.UID, Name: name, Email: email, IsAdmin: admin}))
	return id.UID
}

// bearer abre una sesión y devuelve el header Authorization.
func (e *testEnv) bearer(t *testing.T, email string) string {
	t.Helper()
	res, err := e.idp.SignIn(context.Background(), email, testPassword)
	require.NoError(t, err, "debe abrirse una sesión válida")
	return "Bearer " + res.Token
}

// do ejecuta la request y devuelve status y cuerpo.
func (e *testEnv) do(t *testing.T, method, path, authHeader string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func (e *testEnv) get(t *testing.T, path, authHeader string) (int, []byte) {
	t.Helper()
	return e.do(t, http.MethodGet, path, authHeader, nil)
}

// decode parsea el cuerpo JSON en dst.
func decode(t *testing.T, body []byte, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, dst), "cuerpo: %s", body)
}

// errorCode extrae el campo code de un dto.ErrorResponse.
func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var out struct {
		Code string `json:"code"`
	}
	decode(t, body, &out)
	return out.Code
}
