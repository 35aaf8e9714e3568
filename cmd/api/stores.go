package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/agenda-api/internal/domain/repository"
	"github.com/jhoicas/agenda-api/internal/infrastructure/identity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/memory"
	"github.com/jhoicas/agenda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agenda-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/agenda-api/pkg/config"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

// stores agrupa los adaptadores de persistencia elegidos por STORE_DRIVER.
type stores struct {
	appointments repository.AppointmentRepository
	employees    repository.EmployeeRepository
	credentials  repository.CredentialRepository
	sessions     identity.SessionStore
	close        func()
}

// openStores: postgres + redis, o todo en memoria para desarrollo local.
func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		return &stores{
			appointments: memory.NewAppointmentRepository(),
			employees:    memory.NewEmployeeRepository(),
			credentials:  memory.NewCredentialRepository(),
			sessions:     memory.NewSessionStore(),
			close:        func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	rdb, err := redisstore.NewClient(ctx, cfg.Redis)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("conexión a Redis: %w", err)
	}

	return &stores{
		appointments: postgres.NewAppointmentRepository(pool),
		employees:    postgres.NewEmployeeRepository(pool),
		credentials:  postgres.NewCredentialRepository(pool),
		sessions:     redisstore.NewSessionStore(rdb),
		close: func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar Redis")
			}
			pool.Close()
		},
	}, nil
}
