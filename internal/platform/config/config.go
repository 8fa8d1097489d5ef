package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	StoreBackend   string
	DatabaseURL    string
	SQLitePath     string
	MigrationsPath string // source URL such as file://migrations/postgres; empty uses the embedded files

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string

	CORSAllowedOrigins []string

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	BalanceCacheSize int
	BalanceCacheTTL  time.Duration

	DisplayCurrency  string
	DefaultPageLimit int
}

// LoadConfig loads configuration from environment variables and a .env file if present.
// Environment variables win over .env values, which win over defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", BackendPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("SQLITE_PATH", "expenses.db")
	v.SetDefault("MIGRATIONS_PATH", "")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "24h")
	v.SetDefault("JWT_ISSUER", "expense-manager")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "expense_events")
	v.SetDefault("AMQP_QUEUE", "transaction_events")
	v.SetDefault("BALANCE_CACHE_SIZE", 1024)
	v.SetDefault("BALANCE_CACHE_TTL", "5m")
	v.SetDefault("DISPLAY_CURRENCY", "INR")
	v.SetDefault("DEFAULT_PAGE_LIMIT", 10)

	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		LogLevel:         strings.ToLower(v.GetString("LOG_LEVEL")),
		StoreBackend:     strings.ToLower(v.GetString("STORE_BACKEND")),
		DatabaseURL:      v.GetString("PGSQL_URL"),
		SQLitePath:       v.GetString("SQLITE_PATH"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		LoginRateLimit:   v.GetString("LOGIN_RATE_LIMIT"),
		AMQPURL:          v.GetString("AMQP_URL"),
		AMQPExchange:     v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:        v.GetString("AMQP_QUEUE"),
		BalanceCacheSize: v.GetInt("BALANCE_CACHE_SIZE"),
		DisplayCurrency:  strings.ToUpper(v.GetString("DISPLAY_CURRENCY")),
		DefaultPageLimit: v.GetInt("DEFAULT_PAGE_LIMIT"),
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.BalanceCacheTTL, err = parseDuration(v, "BALANCE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.StoreBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORE_BACKEND is %q", BackendSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.DefaultPageLimit < 1 {
		cfg.DefaultPageLimit = 10
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}
