package config

import "time"

// Config holds runtime settings for the FitBuddy CLI.
//
// Fields:
//   - FitnessAPIBaseURL: base URL of the exercises API.
//   - FitnessAPIKey: API key; when empty the built-in catalog is served.
//   - DatabasePath: SQLite file holding persisted client state.
//   - RequestTimeout: per-request timeout for catalog fetches.
type Config struct {
	FitnessAPIBaseURL string
	FitnessAPIKey     string
	DatabasePath      string
	RequestTimeout    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.FitnessAPIBaseURL = "https://api.api-ninjas.com/v1"
	c.FitnessAPIKey = ""
	c.DatabasePath = "fitbuddy.db"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
