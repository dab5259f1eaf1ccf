package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for both services.
type Config struct {
	Intake    IntakeConfig
	Gateway   GatewayConfig
	Mongo     MongoConfig
	SMTP      SMTPConfig
	Webhook   WebhookConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// IntakeConfig controls the complaint intake API server.
type IntakeConfig struct {
	Host string
	Port string
}

// GatewayConfig controls the chat gateway server.
type GatewayConfig struct {
	Host         string
	Port         string
	StaticDir    string
	TemplatesDir string
}

// MongoConfig holds document database connection values.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// SMTPConfig holds mail relay connection values.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// WebhookConfig points at the external automation endpoint.
type WebhookConfig struct {
	URL string
}

// RedisConfig holds Redis connection values for the intake rate limiter.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig bounds complaint submissions per client.
type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		Intake: IntakeConfig{
			Host: getEnv("INTAKE_HOST", "0.0.0.0"),
			Port: getEnv("INTAKE_PORT", "7000"),
		},
		Gateway: GatewayConfig{
			Host:         getEnv("GATEWAY_HOST", "0.0.0.0"),
			Port:         getEnv("GATEWAY_PORT", "3000"),
			StaticDir:    getEnv("STATIC_DIR", "./web/static"),
			TemplatesDir: getEnv("TEMPLATES_DIR", "./web/templates"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGODB_DATABASE", "reclamos"),
			ConnectTimeout: time.Duration(getEnvAsInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		SMTP: SMTPConfig{
			Host:     getEnv("EMAIL_HOST", "localhost"),
			Port:     getEnvAsInt("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     getEnv("EMAIL_FROM", "no-reply@dominio.com"),
		},
		Webhook: WebhookConfig{
			URL: getEnv("N8N_WEBHOOK_URL", "http://n8n:5678/webhook/web-interface"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		RateLimit: RateLimitConfig{
			Enabled:   getEnvAsBool("RATE_LIMIT_ENABLED", false),
			PerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the intake HTTP bind address.
func (c IntakeConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// Addr returns the gateway HTTP bind address.
func (c GatewayConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
