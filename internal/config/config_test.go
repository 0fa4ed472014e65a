package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/aikiddo")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/aikiddo", cfg.Database.URL)
	assert.Equal(t, ":9000", cfg.HTTPServer.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "aikiddo-api", cfg.AppName)
}

func TestLoad_MemoryDriverNeedsNoURL(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("DATABASE_URL", "")
		_, err := Load("")
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mongo")
		_, err := Load("")
		assert.ErrorContains(t, err, "unknown DB_DRIVER")
	})
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: dev
http_server:
  address: ":8081"
database:
  driver: sqlite
  url: "file:aikiddo.db"
  auto_migrate: true
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8081", cfg.HTTPServer.Addr)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestPublicEndpoint(t *testing.T) {
	cases := []struct {
		baseURL  string
		scheme   string
		host     string
		basePath string
	}{
		{"http://localhost:8000", "http", "localhost:8000", "/"},
		{"https://api.aikiddo.example/", "https", "api.aikiddo.example", "/"},
		{"https://aikiddo.example/api/v1/", "https", "aikiddo.example", "/api/v1"},
	}

	for _, tc := range cases {
		cfg := Config{BaseURL: tc.baseURL}
		scheme, host, basePath, err := cfg.PublicEndpoint()
		require.NoError(t, err, tc.baseURL)
		assert.Equal(t, tc.scheme, scheme)
		assert.Equal(t, tc.host, host)
		assert.Equal(t, tc.basePath, basePath)
	}
}

func TestLoad_RejectsRelativeBaseURL(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("BASE_URL", "localhost:8000")

	_, err := Load("")
	assert.ErrorContains(t, err, "BASE_URL")
}
