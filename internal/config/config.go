package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Version is the current application version, stamped into user records and
// exported snapshots.
const Version = "1.0.0"

// Config holds application configuration
type Config struct {
	StoreType string
	StorePath string
	StoreURL  string

	AWSRegion    string
	SESFromEmail string
	SESFromName  string

	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StoreType: getEnv("STORE_TYPE", "sqlite"),
		StorePath: getEnv("STORE_PATH", "./drsparkle.db"),
		StoreURL:  os.Getenv("STORE_URL"),

		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail: os.Getenv("SES_FROM_EMAIL"),
		SESFromName:  getEnv("SES_FROM_NAME", "Dr. Sparkle"),

		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:  os.Getenv("OAUTH_REDIRECT_URL"),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
