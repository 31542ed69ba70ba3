// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "DATABASE_TYPE", "DB_INSECURE_TLS", "DB_MAX_CONNS",
		"DB_CONN_MAX_LIFETIME", "CREATE_SCHEMA", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGIN",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://user:pw@db.example.com/content")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, DatabasePostgres, cfg.DatabaseType)
	assert.Equal(t, 4, cfg.MaxConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.DBInsecureTLS)
}

func TestParseFlags_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := ParseFlags([]string{"-d", "file:content.db"})
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, DatabaseSQLite, cfg.DatabaseType)
	assert.Equal(t, 10, cfg.MaxConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "*", cfg.AllowedOrigin)
	assert.False(t, cfg.CreateSchema)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_INSECURE_TLS", "true")

	cfg, err := ParseFlags([]string{
		"-p", "8080",
		"-d", "postgresql://localhost/content",
		"-t", "pgx",
		"-db-insecure-tls", "false",
		"-create-schema", "true",
	})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port, "CLI should override env")
	assert.Equal(t, DatabasePgx, cfg.DatabaseType)
	assert.False(t, cfg.DBInsecureTLS)
	assert.True(t, cfg.CreateSchema)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{name: "missing database url", args: []string{}},
		{name: "invalid port", env: map[string]string{"PORT": "abc"}, args: []string{"-d", "x.db"}},
		{name: "unknown database type", args: []string{"-d", "x.db", "-t", "mysql"}},
		{name: "invalid bool", env: map[string]string{"DB_INSECURE_TLS": "maybe"}, args: []string{"-d", "x.db"}},
		{name: "invalid max conns", env: map[string]string{"DB_MAX_CONNS": "0"}, args: []string{"-d", "x.db"}},
		{name: "invalid lifetime", args: []string{"-d", "x.db", "-conn-max-lifetime", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearConfigEnv(t)
	os.Unsetenv("DATABASE_URL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=file:from-dotenv.db\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { os.Unsetenv("DATABASE_URL") })

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)
	assert.Equal(t, "file:from-dotenv.db", cfg.DatabaseURL)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}
