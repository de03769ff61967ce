// Package config resolves runtime settings from the environment, with an
// optional .env file for development setups.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	StatePath  string
	LogFile    string
	LogLevel   string
}

// Load reads FITGUIDE_* variables; a .env in the working directory is
// merged in when present and never overrides real environment values.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL: os.Getenv("FITGUIDE_API_URL"),
		StatePath:  os.Getenv("FITGUIDE_STATE_DB"),
		LogFile:    os.Getenv("FITGUIDE_LOG_FILE"),
		LogLevel:   getOr("FITGUIDE_LOG_LEVEL", "info"),
	}
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
