package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Env      string
	Port     string
	LogLevel slog.Level

	DatabaseDriver     string
	DatabaseDSN        string
	DBMaxOpenConns     int
	DBMaxIdleConns     int
	DBConnMaxLifetime  time.Duration
	JWTSecret          string
	JWTTTL             time.Duration
	RedisURL           string
	CacheTTL           time.Duration
	RabbitMQURL        string
	OTLPEndpoint       string
	SeedCatalog        bool
	StoreLocation      *time.Location
	DailyGenerationCap int

	AI AIConfig
}

// AIConfig configures the outfit stylist backend.
type AIConfig struct {
	APIKey          string
	Endpoint        string
	Model           string
	Timeout         time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Enabled reports whether an AI credential is configured.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

const devJWTSecret = "dev-secret-change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=vybe port=5432 sslmode=disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 25)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_ENDPOINT", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("AI_MODEL", "gpt-3.5-turbo")
	v.SetDefault("AI_TIMEOUT", "15s")
	v.SetDefault("AI_BREAKER_FAILURES", 5)
	v.SetDefault("AI_BREAKER_COOLDOWN", "1m")
	v.SetDefault("DAILY_GENERATION_LIMIT", 3)
	v.SetDefault("STORE_TIMEZONE", "Local")
	v.SetDefault("SEED_CATALOG", false)
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.String("reason", err.Error()))
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:                strings.ToLower(v.GetString("APP_ENV")),
		Port:               v.GetString("APP_PORT"),
		DatabaseDriver:     strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:        v.GetString("DATABASE_DSN"),
		DBMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTTTL:             v.GetDuration("JWT_TTL"),
		RedisURL:           v.GetString("REDIS_URL"),
		CacheTTL:           v.GetDuration("CACHE_TTL"),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		OTLPEndpoint:       v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		SeedCatalog:        v.GetBool("SEED_CATALOG"),
		DailyGenerationCap: v.GetInt("DAILY_GENERATION_LIMIT"),
		AI: AIConfig{
			APIKey:          v.GetString("AI_API_KEY"),
			Endpoint:        v.GetString("AI_ENDPOINT"),
			Model:           v.GetString("AI_MODEL"),
			Timeout:         v.GetDuration("AI_TIMEOUT"),
			BreakerFailures: v.GetInt("AI_BREAKER_FAILURES"),
			BreakerCooldown: v.GetDuration("AI_BREAKER_COOLDOWN"),
		},
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	loc, err := time.LoadLocation(v.GetString("STORE_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TIMEZONE: %w", err)
	}
	cfg.StoreLocation = loc

	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.JWTSecret = devJWTSecret
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if c.DailyGenerationCap < 1 {
		errs = append(errs, errors.New("DAILY_GENERATION_LIMIT must be at least 1"))
	}
	if c.AI.Enabled() && c.AI.Timeout <= 0 {
		errs = append(errs, errors.New("AI_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}
