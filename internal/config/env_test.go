package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "HOST", "PORT", "APP_ENV", "CORS_ALLOW_ORIGINS", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT",
		"DATABASE_URL", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB", "POSTGRES_USER", "POSTGRES_PASSWORD",
		"POSTGRES_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "N8N_URL", "N8N_API_KEY", "CSV_IMPORT_URL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, "http://n8n:5678", cfg.N8N.URL)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 1, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5*time.Second, cfg.N8N.HealthTimeout)
	assert.Equal(t, 10*time.Second, cfg.N8N.StartTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "8080"
  read_timeout: 3s
database:
  name: from_file
  max_open_conns: 4
n8n:
  url: http://file-n8n:5678
`), 0o644))

	clearEnv(t)
	t.Setenv("N8N_URL", "http://env-n8n:5678")
	t.Setenv("DB_MAX_IDLE_CONNS", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "from_file", cfg.Database.Name)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2, cfg.Database.MaxIdleConns)
	assert.Equal(t, "http://env-n8n:5678", cfg.N8N.URL)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		env           map[string]string
		errorContains string
	}{
		{name: "bad port", env: map[string]string{"PORT": "http"}, errorContains: "port invalid"},
		{name: "bad pool", env: map[string]string{"DB_MAX_OPEN_CONNS": "x"}, errorContains: "not an integer"},
		{name: "idle above open", env: map[string]string{"DB_MAX_OPEN_CONNS": "2", "DB_MAX_IDLE_CONNS": "5"}, errorContains: "exceed max open"},
		{name: "bad n8n url", env: map[string]string{"N8N_URL": "n8n:5678"}, errorContains: "must start with http"},
		{name: "bad timeout", env: map[string]string{"HTTP_READ_TIMEOUT": "soon"}, errorContains: "not a duration"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.PostgresDSN())
	assert.NotContains(t, d.Redacted(), "password")

	d.URL = "postgres://u:secret@db:5432/n"
	assert.Equal(t, d.URL, d.PostgresDSN())
	assert.NotContains(t, d.Redacted(), "secret")
}

func TestLoadEnv_NoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("N8N_API_KEY=from-file\nTC_ONLY_IN_FILE=1\n"), 0o644))
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("N8N_API_KEY", "from-env")
	t.Setenv("TC_ONLY_IN_FILE", "")
	os.Unsetenv("TC_ONLY_IN_FILE")

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-env", os.Getenv("N8N_API_KEY"))
	assert.Equal(t, "1", os.Getenv("TC_ONLY_IN_FILE"))
}

func TestValidateHelpers(t *testing.T) {
	assert.NoError(t, ValidatePort("3001", "server"))
	assert.Error(t, ValidatePort("", "server"))
	assert.Error(t, ValidatePort("70000", "server"))
	assert.NoError(t, ValidateTimeout(time.Second, "x"))
	assert.Error(t, ValidateTimeout(0, "x"))
	assert.Error(t, ValidateTimeout(time.Hour, "x"))
	assert.NoError(t, ValidateURL("https://n8n", "x"))
	assert.Error(t, ValidateURL("", "x"))
	assert.NoError(t, ValidatePoolSize(10, 1))
	assert.Error(t, ValidatePoolSize(0, 0))
}
