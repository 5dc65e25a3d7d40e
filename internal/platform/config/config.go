package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      slog.Level
	StoreBackend  string
	DatabaseURL   string
	EnableDBCheck bool

	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted rate, e.g. "120-M"; empty disables

	LookupCacheSize int
	LookupCacheTTL  time.Duration

	// Change events; disabled when AMQPURL is empty.
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	// Auto add; disabled when GeminiAPIKey is empty.
	GeminiAPIKey string
	GeminiModel  string
}

// EventsEnabled reports whether change events should be published.
func (c *Config) EventsEnabled() bool { return c.AMQPURL != "" }

// AutoAddEnabled reports whether the auto-add parser is configured.
func (c *Config) AutoAddEnabled() bool { return c.GeminiAPIKey != "" }

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_BACKEND", StoreBackendPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("LOOKUP_CACHE_SIZE", 64)
	viper.SetDefault("LOOKUP_CACHE_TTL", "5m")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "finance_tracker")
	viper.SetDefault("AMQP_ROUTING_KEY", "transactions")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		StoreBackend:    strings.ToLower(strings.TrimSpace(viper.GetString("STORE_BACKEND"))),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		EnableDBCheck:   viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		RateLimit:       strings.TrimSpace(viper.GetString("RATE_LIMIT")),
		LookupCacheSize: viper.GetInt("LOOKUP_CACHE_SIZE"),
		AMQPURL:         viper.GetString("AMQP_URL"),
		AMQPExchange:    viper.GetString("AMQP_EXCHANGE"),
		AMQPRoutingKey:  viper.GetString("AMQP_ROUTING_KEY"),
		GeminiAPIKey:    viper.GetString("GEMINI_API_KEY"),
		GeminiModel:     viper.GetString("GEMINI_MODEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch cfg.StoreBackend {
	case StoreBackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORE_BACKEND is %q", StoreBackendPostgres)
		}
	case StoreBackendMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: want %q or %q", cfg.StoreBackend, StoreBackendPostgres, StoreBackendMemory)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	ttlStr := viper.GetString("LOOKUP_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
		slog.Warn("Invalid value for LOOKUP_CACHE_TTL, using default",
			slog.String("value", ttlStr), slog.Duration("default", ttl))
	}
	cfg.LookupCacheTTL = ttl

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if !cfg.EventsEnabled() {
		slog.Info("AMQP_URL not set. Change events are disabled.")
	}
	if !cfg.AutoAddEnabled() {
		slog.Info("GEMINI_API_KEY not set. Auto add is disabled.")
	}

	return cfg, nil
}
