package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	pkgRetry "github.com/Suruthi-CS/Tech-Surf-ChatBot/internal/pkg/retry"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	ContentStoreCfg ContentStoreConfig `envPrefix:"CONTENT_STORE_"`
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`

	// Chat configuration
	ChatCfg ChatConfig `envPrefix:"CHAT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Telegram bot configuration (only required by cmd/telegram-bot)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// ContentStoreConfig configures the external content store. Credentials are
// explicit fields handed to the retrieval component at construction time;
// nothing reads the process environment at search time.
type ContentStoreConfig struct {
	HTTPClientConfig
	APIKey          string               `env:"API_KEY,notEmpty"`
	DeliveryToken   string               `env:"DELIVERY_TOKEN,notEmpty"`
	ManagementToken string               `env:"MANAGEMENT_TOKEN"`
	ManagementURL   string               `env:"MANAGEMENT_URL"`
	Environment     string               `env:"ENVIRONMENT,notEmpty"`
	Region          string               `env:"REGION" envDefault:"us"`
	FetchLimit      int                  `env:"FETCH_LIMIT" envDefault:"100"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	ChatEndpoint string               `env:"CHAT_ENDPOINT,notEmpty"`
	DefaultModel string               `env:"DEFAULT_MODEL"`
	Retry        pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// ChatConfig tunes the conversation layer.
type ChatConfig struct {
	// HistoryTTL bounds how long an idle conversation is kept in memory.
	HistoryTTL time.Duration `env:"HISTORY_TTL" envDefault:"1h"`
	// HistoryMaxMessages bounds how many recent turns are replayed to the LLM.
	HistoryMaxMessages int `env:"HISTORY_MAX_MESSAGES" envDefault:"20"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT,notEmpty"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT,notEmpty"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE,notEmpty"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT,notEmpty"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT,notEmpty"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string `env:"BOT_TOKEN,notEmpty"`
	DefaultBotID       string `env:"DEFAULT_BOT_ID,notEmpty"`
	UpdateTimeout      int    `env:"UPDATE_TIMEOUT,notEmpty"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE,notEmpty"`
	RateLimitBurst     int    `env:"RATE_LIMIT_BURST,notEmpty"`
	ShutdownTimeout    int    `env:"SHUTDOWN_TIMEOUT,notEmpty"` // seconds
}

// FileUploadConfig holds spreadsheet upload limits
type FileUploadConfig struct {
	MaxFileSize   int64 `env:"MAX_FILE_SIZE,notEmpty"`   // per file, bytes
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE,notEmpty"` // multipart form memory limit
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.ContentStoreCfg.FetchLimit < 1 || cfg.ContentStoreCfg.FetchLimit > 100 {
		errors = append(errors, fmt.Sprintf("CONTENT_STORE_FETCH_LIMIT must be between 1 and 100, got %d", cfg.ContentStoreCfg.FetchLimit))
	}

	switch cfg.ContentStoreCfg.Region {
	case "us", "eu", "azure-na", "azure-eu":
	default:
		errors = append(errors, fmt.Sprintf("CONTENT_STORE_REGION must be one of us, eu, azure-na, azure-eu, got %q", cfg.ContentStoreCfg.Region))
	}

	if cfg.ChatCfg.HistoryMaxMessages < 2 || cfg.ChatCfg.HistoryMaxMessages > 200 {
		errors = append(errors, fmt.Sprintf("CHAT_HISTORY_MAX_MESSAGES must be between 2 and 200, got %d", cfg.ChatCfg.HistoryMaxMessages))
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// ValidateTelegram checks the bounds only the telegram entrypoint cares about.
func (cfg *Config) ValidateTelegram() error {
	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		return fmt.Errorf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute)
	}

	if cfg.TelegramCfg.RateLimitBurst < 1 || cfg.TelegramCfg.RateLimitBurst > 20 {
		return fmt.Errorf("TELEGRAM_RATE_LIMIT_BURST must be between 1 and 20, got %d", cfg.TelegramCfg.RateLimitBurst)
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		return fmt.Errorf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout)
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
