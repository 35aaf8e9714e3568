package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/agenda-api/internal/application/analytics"
	"github.com/jhoicas/agenda-api/internal/application/auth"
	"github.com/jhoicas/agenda-api/internal/application/report"
	"github.com/jhoicas/agenda-api/internal/application/session"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
	"github.com/jhoicas/agenda-api/internal/infrastructure/identity"
	infrapdf "github.com/jhoicas/agenda-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/agenda-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/agenda-api/internal/interfaces/http"
	"github.com/jhoicas/agenda-api/pkg/config"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenes")
	}
	defer st.close()

	provider := identity.NewProvider(st.credentials, st.sessions, identity.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	resolver := session.NewResolver(st.employees, provider, log)

	authUC := auth.NewAuthUseCase(provider, resolver, log)
	appointmentUC := usecase.NewAppointmentUseCase(st.appointments, log)
	employeeUC := usecase.NewEmployeeUseCase(st.employees, provider, cfg.Employees.ProfileRetryDelay, log)
	dashboardUC := appanalytics.NewDashboardUseCase(appointmentUC)
	reportUC := report.NewReportUseCase(appointmentUC,
		infrapdf.NewMarotoAgendaGenerator(cfg.App.Name),
		infraxlsx.NewExporter(),
	)

	if cfg.Bootstrap.Enabled() {
		created, err := employeeUC.Bootstrap(ctx, cfg.Bootstrap.AdminName, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword)
		if err != nil {
			log.Error().Err(err).Msg("bootstrap del administrador")
		} else if created {
			log.Info().Str("email", cfg.Bootstrap.AdminEmail).Msg("administrador inicial creado")
		}
	}

	loginLimiter := httpRouter.NewRateLimiter(cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)
	go loginLimiter.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    cfg.App.Name + " API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AppointmentUC: appointmentUC,
		EmployeeUC:    employeeUC,
		DashboardUC:   dashboardUC,
		ReportUC:      reportUC,
		Verifier:      provider,
		Resolver:      resolver,
		LoginLimiter:  loginLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
