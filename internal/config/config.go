package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/lawai/consult-backend/internal/pkg/retry"
)

// Config holds the application configuration.
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	LLMConnectorCfg     LLMConnectorConfig     `envPrefix:"LLM_"`
	ContactConnectorCfg ContactConnectorConfig `envPrefix:"CONTACT_"`

	// Session lifecycle
	SessionTTL             time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Telegram lawyer-notification configuration (optional)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// TelegramConfig holds the bot used to forward contact requests to lawyers.
type TelegramConfig struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	BotToken string `env:"BOT_TOKEN"`
	ChatID   int64  `env:"CHAT_ID"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	ChatEndpoint    string               `env:"CHAT_ENDPOINT,notEmpty"`
	OpinionEndpoint string               `env:"OPINION_ENDPOINT,notEmpty"`
	Model           string               `env:"MODEL,notEmpty"`
	Temperature     float64              `env:"TEMPERATURE" envDefault:"0.2"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type ContactConnectorConfig struct {
	HTTPClientConfig
	SubmitEndpoint string               `env:"SUBMIT_ENDPOINT,notEmpty"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	DialTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	URL                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Missing env file is fine: containerized deployments set vars externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" && !cfg.EnableMocks {
		return fmt.Errorf("DATABASE_URL is required unless ENABLE_MOCKS is set")
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}
	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	if cfg.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least 1m, got %s", cfg.SessionTTL)
	}

	if cfg.LLMConnectorCfg.Temperature < 0 || cfg.LLMConnectorCfg.Temperature > 2 {
		return fmt.Errorf("LLM_TEMPERATURE must be between 0 and 2, got %g", cfg.LLMConnectorCfg.Temperature)
	}

	if cfg.TelegramCfg.Enabled {
		if cfg.TelegramCfg.BotToken == "" {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN is required when TELEGRAM_ENABLED is set")
		}
		if cfg.TelegramCfg.ChatID == 0 {
			return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_ENABLED is set")
		}
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
