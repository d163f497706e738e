package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string
	AutoMigrate bool
	RedisURL    string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	JWTSecret       string
	JWTPublicKeyPEM string
	JWTIssuer       string
	JWTAudience     string

	// AdminEmails always hold the admin role (ADMIN_EMAILS, comma separated).
	AdminEmails []string

	StripeSecretKey    string
	PaymentCurrency    string
	ClientBaseURL      string
	CheckoutRateLimit  int
	CheckoutRateWindow time.Duration
}

// Load reads the process environment. A .env file in the working directory,
// or the one named by ENV_FILE, is applied first without overriding
// variables that are already set.
func Load() (Config, error) {
	if err := loadDotEnv(strings.TrimSpace(os.Getenv("ENV_FILE"))); err != nil {
		return Config{}, err
	}

	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "scholarstream"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	currency := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_CURRENCY")))
	if currency == "" {
		currency = "usd"
	}

	cfg := Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		AutoMigrate: envBool("AUTO_MIGRATE", false),
		RedisURL:    strings.TrimSpace(os.Getenv("REDIS_URL")),

		DBMaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		JWTSecret:       os.Getenv("IDENTITY_JWT_SECRET"),
		JWTPublicKeyPEM: os.Getenv("IDENTITY_JWT_PUBLIC_KEY"),
		JWTIssuer:       strings.TrimSpace(os.Getenv("IDENTITY_JWT_ISSUER")),
		JWTAudience:     strings.TrimSpace(os.Getenv("IDENTITY_JWT_AUDIENCE")),
		AdminEmails:     envList("ADMIN_EMAILS"),

		StripeSecretKey:    strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		PaymentCurrency:    currency,
		ClientBaseURL:      strings.TrimRight(strings.TrimSpace(os.Getenv("CLIENT_BASE_URL")), "/"),
		CheckoutRateLimit:  envInt("CHECKOUT_RATE_LIMIT", 3),
		CheckoutRateWindow: envDuration("CHECKOUT_RATE_WINDOW", time.Minute),
	}
	if cfg.ClientBaseURL == "" {
		cfg.ClientBaseURL = "http://localhost:5173"
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envList(name string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(name), ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
