package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"bakerydir/pkg/database"
)

// Config holds every externally wired collaborator of the service.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	Database database.Config

	// JWTSecret signs bearer tokens. Required: the process refuses to
	// start without it rather than falling back to a guessable default.
	JWTSecret string

	// N8NWebhookURL is the external lead-scraping workflow trigger.
	// Optional; the trigger route reports a config error when unset.
	N8NWebhookURL string

	KafkaBrokers   []string
	RedisAddr      string
	JaegerEndpoint string
	StaticDir      string
}

// Load reads configuration from the environment, autoloading .env when present.
func Load() (*Config, error) {
	// Same behavior as dotenv: a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "bakerydir"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:      os.Getenv("JWT_SECRET"),
		N8NWebhookURL:  os.Getenv("N8N_WEBHOOK_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		JaegerEndpoint: os.Getenv("JAEGER_ENDPOINT"),
		StaticDir:      getEnv("STATIC_DIR", "public"),
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
