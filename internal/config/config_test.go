package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "catalog", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "none", cfg.Events.Driver)
	assert.Equal(t, "CATALOG_EVENTS", cfg.Events.NATS.Stream)
	assert.Equal(t, 10, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 2*time.Second, cfg.Events.NATS.ReconnectWait)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: 9000
database:
  driver: sqlite
  path: /tmp/catalog.db
events:
  driver: nats
`), 0o600))
	t.Setenv("CATALOG_HTTP_PORT", "9100")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/catalog.db", cfg.Database.DSN())
	assert.Equal(t, "nats", cfg.Events.Driver)
}

func TestLoad_RejectsUnknownEventsDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_EVENTS_DRIVER", "carrier-pigeon")

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := config.DatabaseConfig{
		Driver: "postgres", Host: "db", Port: 5432, User: "u", Password: "p", Name: "catalog", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=catalog sslmode=disable", d.DSN())
}
