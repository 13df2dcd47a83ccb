package config_test

import (
	"testing"
	"time"

	"cardflow/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "data/cardflow.db", cfg.Database.DSN())
	assert.Equal(t, 7*24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, uint64(5), cfg.Database.ConnectRetries)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "planner")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "cards")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "host=db.internal port=5433 user=planner password=secret dbname=cards sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongo")

	_, err := config.Load()
	assert.EqualError(t, err, "unsupported DB_DRIVER: mongo")
}
