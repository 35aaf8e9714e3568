package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agenda-api/internal/application/analytics"
	"github.com/jhoicas/agenda-api/internal/application/auth"
	"github.com/jhoicas/agenda-api/internal/application/report"
	"github.com/jhoicas/agenda-api/internal/application/session"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AppointmentUC *usecase.AppointmentUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	DashboardUC   *analytics.DashboardUseCase
	ReportUC      *report.ReportUseCase
	Verifier      TokenVerifier
	Resolver      SessionResolver
	LoginLimiter  *RateLimiter // nil = sin límite
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	authed := AuthMiddleware(deps.Verifier, deps.Resolver)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	if deps.LoginLimiter != nil {
		authGroup.Post("/login", deps.LoginLimiter.Handler(), authHandler.Login)
	} else {
		authGroup.Post("/login", authHandler.Login)
	}
	authGroup.Post("/logout", authed, authHandler.Logout)
	authGroup.Get("/session", OptionalAuth(deps.Verifier, deps.Resolver), authHandler.Session)

	// Agenda (cualquier funcionario)
	appointments := api.Group("/appointments", authed, RequireAccess(session.RequireEmployee))
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Get("/", appointmentHandler.List)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Dashboard (admin)
	dashboard := api.Group("/dashboard", authed, RequireAccess(session.RequireAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ReportUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/agenda.pdf", dashboardHandler.AgendaPDF)
	dashboard.Get("/appointments.xlsx", dashboardHandler.AppointmentsXLSX)

	// Funcionarios (admin)
	employees := api.Group("/employees", authed, RequireAccess(session.RequireAdmin))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Delete("/:id", employeeHandler.Delete)
}
