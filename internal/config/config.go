package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/adapters/auth/bcrypt"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Config es todo lo que el proceso lee del entorno.
type Config struct {
	Port string
	// DBDSN vacío => storage en memoria.
	DBDSN string

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	SessionCookieName    string
	SessionCookieSecure  bool

	BcryptCost int
	// Location para los límites de día/mes de /stats.
	Location *time.Location
	SeedData bool

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string
}

// Load lee .env si existe (no pisa variables ya seteadas) y después el entorno.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv no toca .env; los tests lo usan con t.Setenv.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		DBDSN:             strings.TrimSpace(os.Getenv("DB_DSN")),
		SessionCookieName: getEnvOrDefault("SESSION_COOKIE_NAME", middleware.DefaultSessionCookie),
		LogLevel:          logger.ParseLevel(os.Getenv("LOG_LEVEL")),
		LogFormat:         logger.ParseFormat(os.Getenv("LOG_FORMAT")),
		AppName:           getEnvOrDefault("APP_NAME", "pet-adoption"),
	}

	var err error
	if cfg.SessionTTL, err = getEnvAsDurationOrDefault("SESSION_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SessionSweepInterval, err = getEnvAsDurationOrDefault("SESSION_SWEEP_INTERVAL", 10*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SessionCookieSecure, err = getEnvAsBoolOrDefault("SESSION_COOKIE_SECURE", false); err != nil {
		return Config{}, err
	}
	if cfg.SeedData, err = getEnvAsBoolOrDefault("SEED_SAMPLE_DATA", true); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = getEnvAsIntOrDefault("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return Config{}, err
	}

	cfg.Location = time.Local
	if tz := strings.TrimSpace(os.Getenv("BUSINESS_TIMEZONE")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return Config{}, fmt.Errorf("config: BUSINESS_TIMEZONE: %w", err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}

// Addr es lo que recibe http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) Cookie() middleware.SessionCookie {
	return middleware.SessionCookie{
		Name:   c.SessionCookieName,
		Secure: c.SessionCookieSecure,
		TTL:    c.SessionTTL,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive", key)
	}
	return d, nil
}
