package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, "log_level: debug\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.HTTPServerAddr)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 12, cfg.Catalog.PageSize)
		assert.Equal(t, CartStorageMemory, cfg.Cart.Storage)
		assert.Equal(t, "light", cfg.Theme.Default)
		assert.False(t, cfg.Theme.Switchable)
		assert.Equal(t, time.Second, cfg.Submission.AckDelay)
		assert.False(t, cfg.BrokerEnabled())

		level, err := cfg.SlogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("Overrides", func(t *testing.T) {
		cfg, err := LoadFile(writeConfig(t, `
http_server_addr: ":9000"
cart:
  storage: redis
  redis_addr: "redis:6379"
theme:
  default: dark
  switchable: true
submission:
  ack_delay: 250ms
broker:
  seed_brokers: ["kafka-1:9092"]
`))
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.HTTPServerAddr)
		assert.Equal(t, CartStorageRedis, cfg.Cart.Storage)
		assert.Equal(t, "redis:6379", cfg.Cart.RedisAddr)
		assert.Equal(t, "dark", cfg.Theme.Default)
		assert.True(t, cfg.Theme.Switchable)
		assert.Equal(t, 250*time.Millisecond, cfg.Submission.AckDelay)
		assert.True(t, cfg.BrokerEnabled())
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "unknown_key: 1\n"))
		require.Error(t, err)
	})

	t.Run("PostgresWithoutDSN", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "cart:\n  storage: postgres\n"))
		require.Error(t, err)
	})

	t.Run("UnknownStorage", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "cart:\n  storage: local\n"))
		require.Error(t, err)
	})

	t.Run("TimeoutBelowAckDelay", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "request_timeout: 1s\nsubmission:\n  ack_delay: 2s\n"))
		require.Error(t, err)
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "log_level: loud\n"))
		require.Error(t, err)
	})
}

func TestMaskDSN(t *testing.T) {
	assert.Equal(t, "postgres://***@db:5432/kanoha",
		maskDSN("postgres://user:secret@db:5432/kanoha"))
	assert.Equal(t, "", maskDSN(""))
	assert.Equal(t, "host=db", maskDSN("host=db"))
}
