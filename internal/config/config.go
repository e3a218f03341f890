package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all client configuration.
type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	LogLevel    string
	LogFormat   string
	// TokenFile is where the auth token is persisted between runs.
	// It is the only piece of client-side persisted state.
	TokenFile string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:3001/api"),
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		LogLevel:    getEnv("LOG_LEVEL", "warn"),
		LogFormat:   getEnv("LOG_FORMAT", "pretty"),
		TokenFile:   getEnv("TOKEN_FILE", defaultTokenFile()),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// defaultTokenFile places the token under the user's home directory,
// falling back to the working directory when home cannot be resolved.
func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cloudprep_token"
	}
	return filepath.Join(home, ".cloudprep", "token")
}
