package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "resume-forge", cfg.App.AppName)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiresIn)

	assert.Equal(t, int64(10<<20), cfg.Upload.MaxFileBytes)
	assert.False(t, cfg.HasDatabase())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_PORT")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestHasDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "resumeforge")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.HasDatabase())
}

func TestDurationOrDefault(t *testing.T) {
	assert.Equal(t, 5*time.Second, durationOrDefault("", 5*time.Second))
	assert.Equal(t, 90*time.Second, durationOrDefault("90s", time.Minute))
	assert.Equal(t, 30*time.Second, durationOrDefault("30", time.Minute), "bare integers read as seconds")
	assert.Equal(t, time.Minute, durationOrDefault("garbage", time.Minute))
	assert.Equal(t, time.Minute, durationOrDefault("-10s", time.Minute))
}

func TestInt32AndBytesOrDefault(t *testing.T) {
	assert.Equal(t, int32(10), int32OrDefault("", 10))
	assert.Equal(t, int32(25), int32OrDefault("25", 10))
	assert.Equal(t, int32(10), int32OrDefault("0", 10))

	assert.Equal(t, int64(1024), bytesOrDefault("1024", 0))
	assert.Equal(t, int64(99), bytesOrDefault("nope", 99))
}
