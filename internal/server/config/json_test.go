package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads every field", func(t *testing.T) {
		path := writeTempFile(t, `{
			"http_addr": "0.0.0.0:9000",
			"database_dsn": "postgres://db",
			"log_level": "debug",
			"read_timeout": "5s",
			"write_timeout": 7000000000,
			"shutdown_timeout": "1m",
			"cors_origins": ["https://ops.example"],
			"redis_addr": "redis:6379",
			"redis_password": "pw",
			"redis_db": 2,
			"redis_queue_prefix": "jobs",
			"run_migrations": false
		}`)

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		want := &Config{
			HTTPAddr:         "0.0.0.0:9000",
			DatabaseDSN:      "postgres://db",
			LogLevel:         "debug",
			ReadTimeout:      5 * time.Second,
			WriteTimeout:     7 * time.Second,
			ShutdownTimeout:  time.Minute,
			CORSOrigins:      []string{"https://ops.example"},
			RedisAddr:        "redis:6379",
			RedisPassword:    "pw",
			RedisDB:          2,
			RedisQueuePrefix: "jobs",
			RunMigrations:    false,
		}
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("absent keys keep current values", func(t *testing.T) {
		path := writeTempFile(t, `{"database_dsn":"postgres://other"}`)

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		want := defaults()
		want.DatabaseDSN = "postgres://other"
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-a", ":1"}))
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTempFile(t, `{"read_timeout": true}`)
		err := parseJson(defaults(), []string{"-c", path})
		assert.ErrorContains(t, err, "parse config file")
	})
}
