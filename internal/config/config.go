package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/givehub/backend/pkg/jwt"
)

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenExpiry time.Duration
	UploadDir   string
	S3          S3Config
	Email       EmailConfig
}

// Load reads the environment and fails fast on anything the process
// cannot run safely without. The signing secret in particular has no
// default: a missing JWT_SECRET aborts startup instead of silently
// issuing forgeable tokens.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
		TokenExpiry: jwt.DefaultExpiry,
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		expiry, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", raw, err)
		}
		if expiry <= 0 {
			return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %q", raw)
		}
		cfg.TokenExpiry = expiry
	}

	cfg.S3.Endpoint = os.Getenv("S3_ENDPOINT")
	cfg.S3.Region = getEnv("S3_REGION", "auto")
	cfg.S3.AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3.SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	cfg.S3.Bucket = os.Getenv("S3_BUCKET")
	cfg.S3.PublicURL = os.Getenv("S3_PUBLIC_URL")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	return cfg, nil
}

// S3Enabled reports whether uploads should go to object storage instead
// of local disk.
func (c *Config) S3Enabled() bool {
	return c.S3.Bucket != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
