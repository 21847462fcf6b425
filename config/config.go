package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting. It is built once at
// startup and passed by value to the components that need it.
type Config struct {
	HTTPAddr    string
	DatabaseURL string

	JWTSecret       string
	SessionTokenTTL time.Duration
	TwoStepsCodeTTL time.Duration

	ResendAPIKey string
	EmailFrom    string

	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3BaseEndpoint  string
	S3Bucket        string
	S3PublicBaseURL string
}

func Load() (Config, error) {
	// Missing .env is fine in production; variables come from the host.
	_ = godotenv.Load()

	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		JWTSecret:       os.Getenv("JWT_KEY"),
		SessionTokenTTL: 7 * 24 * time.Hour,
		TwoStepsCodeTTL: 15 * time.Minute,
		ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
		EmailFrom:       envOr("EMAIL_FROM", "Devfinder <nao-responda@devfinder.app>"),
		S3Region:        envOr("S3_REGION", "us-east-1"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3BaseEndpoint:  os.Getenv("S3_BASE_ENDPOINT"),
		S3Bucket:        envOr("S3_BUCKET", "utilsBucket"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	}

	if c.JWTSecret == "" {
		return Config{}, errors.New("JWT_KEY is required")
	}
	return c, nil
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
