package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Upload   UploadConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type UploadConfig struct {
	MaxFileBytes int64
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "resume-forge"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    opt("LOG_LEVEL", "info"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", ""),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        durationOrDefault(opt("DB_CONNECT_TIMEOUT", ""), 5*time.Second),
		PoolMaxConns:          int32OrDefault(opt("DB_POOL_MAX_CONNS", ""), 10),
		PoolMinConns:          int32OrDefault(opt("DB_POOL_MIN_CONNS", ""), 0),
		PoolMaxConnLifetime:   durationOrDefault(opt("DB_POOL_MAX_CONN_LIFETIME", ""), time.Hour),
		PoolMaxConnIdleTime:   durationOrDefault(opt("DB_POOL_MAX_CONN_IDLE_TIME", ""), 30*time.Minute),
		PoolHealthCheckPeriod: durationOrDefault(opt("DB_POOL_HEALTH_CHECK_PERIOD", ""), time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      durationOrDefault(opt("REDIS_TTL", ""), 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationOrDefault(opt("JWT_ACCESS_EXPIRES_IN", ""), 15*time.Minute),
		RefreshExpiresIn: durationOrDefault(opt("JWT_REFRESH_EXPIRES_IN", ""), 7*24*time.Hour),
	}

	cfg.Upload = UploadConfig{
		MaxFileBytes: bytesOrDefault(opt("UPLOAD_MAX_FILE_BYTES", ""), 10<<20),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// HasDatabase reports whether enough connection settings are present to
// attempt a connection. The service still runs without one; history
// snapshots and accounts are then disabled.
func (c Config) HasDatabase() bool {
	return c.Database.DBHost != "" && c.Database.DBName != ""
}

func durationOrDefault(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func int32OrDefault(raw string, fallback int32) int32 {
	if raw == "" {
		return fallback
	}
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil && n > 0 {
		return int32(n)
	}
	return fallback
}

func bytesOrDefault(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
		return n
	}
	return fallback
}
