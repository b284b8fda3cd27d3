package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ReadsNestedPrefixes(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost/periodic")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("SESSION_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("SESSION_TTL", "12h")
	t.Setenv("APP_BCRYPT_COST", "12")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://u:p@localhost/periodic", cfg.Storage.DB.DSN)
	assert.Equal(t, SessionBackendRedis, cfg.Session.Backend)
	assert.Equal(t, "localhost:6379", cfg.Session.RedisAddress)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 12, cfg.App.BcryptCost)
}

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, SessionBackendPostgres, cfg.Session.Backend)
	assert.Equal(t, time.Hour, cfg.Session.SweepInterval)
	assert.Equal(t, 10, cfg.App.BcryptCost)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = "0.0.0.0:3000"
	cfg.Session.CookieName = "periodic_session"

	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, "periodic_session", cfg.Session.CookieName)
}

func TestValidate_RequiresDSN(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_RejectsUnknownSessionBackend(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.DB.DSN = "postgres://localhost/periodic"
	cfg.applyDefaults()
	cfg.Session.Backend = "memcached"

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidSessionConfigs)
}

func TestValidate_RedisBackendNeedsAddress(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Storage.DB.DSN = "postgres://localhost/periodic"
	cfg.applyDefaults()
	cfg.Session.Backend = SessionBackendRedis

	require.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)

	cfg.Session.RedisAddress = "localhost:6379"
	require.NoError(t, cfg.validate())
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8081"))
	assert.Equal(t, "localhost:8081", a.String())

	var bad NetAddress
	assert.Error(t, bad.Set("no-port"))
	assert.Error(t, bad.Set("localhost:0"))
	assert.Error(t, bad.Set("not-an-ip:80"))
}
