package config

import (
	"log"
	"os"
	"strconv"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	Env   string
	Port  string
	DBURL string

	AccessTokenSecret  string
	RefreshTokenSecret string

	// TTLs are duration strings of the form \d+[smhd], e.g. "15m", "7d".
	AccessTokenTTL  string
	RefreshTokenTTL string

	BcryptCost        int
	MaxLoginAttempts  int
	LockoutDurationMs int
	MaxActiveSessions int

	PasswordResetTTLHours     int
	EmailVerificationTTLHours int
}

func Load() *Config {
	return &Config{
		Env:   getEnv("ENV", "development"),
		Port:  getEnv("PORT", "8080"),
		DBURL: mustGetEnv("DB_URL"),

		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),

		AccessTokenTTL:  getEnv("ACCESS_TOKEN_TTL", "15m"),
		RefreshTokenTTL: getEnv("REFRESH_TOKEN_TTL", "7d"),

		BcryptCost:        getEnvAsInt("BCRYPT_COST", 10),
		MaxLoginAttempts:  getEnvAsInt("MAX_LOGIN_ATTEMPTS", 5),
		LockoutDurationMs: getEnvAsInt("LOCKOUT_DURATION_MS", 30*60*1000),
		MaxActiveSessions: getEnvAsInt("MAX_ACTIVE_SESSIONS", 5),

		PasswordResetTTLHours:     getEnvAsInt("PASSWORD_RESET_TTL_HOURS", 1),
		EmailVerificationTTLHours: getEnvAsInt("EMAIL_VERIFICATION_TTL_HOURS", 24),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
