package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	JWTSecret string
	TokenTTL  time.Duration

	ConfirmationCodeTTL time.Duration
	ReindexSchedule     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	AdminUsername string
	AdminEmail    string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		JWTSecret: getEnv("JWT_SECRET", "change-me"),

		ReindexSchedule: getEnv("REINDEX_SCHEDULE", "@hourly"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		EmailFrom:    getEnv("EMAIL_FROM", "noreply@yamdb.local"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@yamdb.local"),
	}

	var err error
	cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cfg.ConfirmationCodeTTL, err = time.ParseDuration(getEnv("CONFIRMATION_CODE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONFIRMATION_CODE_TTL: %w", err)
	}

	cfg.SMTPPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
