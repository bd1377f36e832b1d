package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	Evidence EvidenceConfig
	Location LocationConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// JWTConfig holds JWT verification configuration. Tokens are issued by
// the external auth collaborator; this service only verifies them.
type JWTConfig struct {
	Secret string
}

// UpstreamConfig points at the external attendance persistence API.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// EvidenceConfig configures the image host collaborator and the soft
// upload deadline after which a local preview is shown.
type EvidenceConfig struct {
	UploadURL      string
	UploadKey      string
	UploadDeadline time.Duration
}

// LocationConfig configures GPS acquisition and the IP fallback.
type LocationConfig struct {
	GPSTimeout  time.Duration
	IPInfoURL   string
	IPInfoToken string
}

func Load() (*Config, error) {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "Asia/Dhaka"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("ATTENDANCE_API_TIMEOUT", "20s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_API_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("ATTENDANCE_API_URL", ""),
		Timeout: upstreamTimeout,
	}

	uploadDeadline, err := time.ParseDuration(getEnv("UPLOAD_DEADLINE", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_DEADLINE: %w", err)
	}

	config.Evidence = EvidenceConfig{
		UploadURL:      getEnv("IMAGE_HOST_URL", ""),
		UploadKey:      getEnv("IMAGE_HOST_KEY", ""),
		UploadDeadline: uploadDeadline,
	}

	gpsTimeout, err := time.ParseDuration(getEnv("GPS_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GPS_TIMEOUT: %w", err)
	}

	config.Location = LocationConfig{
		GPSTimeout:  gpsTimeout,
		IPInfoURL:   getEnv("IPINFO_URL", "https://ipinfo.io"),
		IPInfoToken: getEnv("IPINFO_TOKEN", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("ATTENDANCE_API_URL is required")
	}
	if c.Evidence.UploadURL == "" {
		return fmt.Errorf("IMAGE_HOST_URL is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
