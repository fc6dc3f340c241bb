package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 2*time.Second, cfg.HTTP.TrackingTimeout)
	assert.False(t, cfg.HTTP.TrustProxy)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.True(t, cfg.Dedup.FailOpen)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.NeedsRedis())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/ads.db")
	t.Setenv("DEDUP_BACKEND", "redis")
	t.Setenv("DEDUP_FAIL_OPEN", "false")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ads.db", cfg.SQLite.Path)
	assert.False(t, cfg.Dedup.FailOpen)
	assert.True(t, cfg.NeedsRedis())
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)
}
