package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 43200, cfg.JWT.Expiration)
	assert.Equal(t, 500*time.Millisecond, cfg.Employees.ProfileRetryDelay)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Bootstrap.Enabled())
}

func TestLoad_Entorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EMPLOYEE_PROFILE_RETRY_MS", "50")
	t.Setenv("LOGIN_RATE_RPS", "0.5")
	t.Setenv("BOOTSTRAP_ADMIN_EMAIL", "admin@autocar.com")
	t.Setenv("BOOTSTRAP_ADMIN_PASSWORD", "secreto1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 50*time.Millisecond, cfg.Employees.ProfileRetryDelay)
	assert.Equal(t, 0.5, cfg.RateLimit.LoginRPS)
	assert.True(t, cfg.Bootstrap.Enabled())
}

func TestLoad_Invalida(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err, "JWT_SECRET es obligatorio")

	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "sqlite")
	_, err = Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "agenda", Password: "p@ss:word", DBName: "agenda", SSLMode: "disable"}
	assert.Equal(t, "postgres://agenda:p%40ss%3Aword@db:5432/agenda?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
