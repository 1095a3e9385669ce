package config

import "os"

// Environment variable names. A .env file loaded at startup (godotenv in
// cmd/cli) ends up here as well.
const (
	EnvAPIBaseURL = "FITNESS_API_BASE_URL"
	EnvAPIKey     = "FITNESS_API_KEY"
	EnvDBPath     = "FITBUDDY_DB"
)

func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok && v != "" {
		cfg.FitnessAPIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvAPIKey); ok && v != "" {
		cfg.FitnessAPIKey = v
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		cfg.DatabasePath = v
	}
}
