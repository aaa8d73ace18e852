package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "postgres://localhost:5432/auth")
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "15m", cfg.AccessTokenTTL)
	assert.Equal(t, "7d", cfg.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, 30*60*1000, cfg.LockoutDurationMs)
	assert.Equal(t, 5, cfg.MaxActiveSessions)
	assert.Equal(t, 1, cfg.PasswordResetTTLHours)
	assert.Equal(t, 24, cfg.EmailVerificationTTLHours)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("REFRESH_TOKEN_TTL", "30d")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "3")
	t.Setenv("LOCKOUT_DURATION_MS", "60000")
	t.Setenv("MAX_ACTIVE_SESSIONS", "2")

	cfg := Load()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "5m", cfg.AccessTokenTTL)
	assert.Equal(t, "30d", cfg.RefreshTokenTTL)
	assert.Equal(t, 3, cfg.MaxLoginAttempts)
	assert.Equal(t, 60000, cfg.LockoutDurationMs)
	assert.Equal(t, 2, cfg.MaxActiveSessions)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_LOGIN_ATTEMPTS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5, cfg.MaxLoginAttempts)
}
