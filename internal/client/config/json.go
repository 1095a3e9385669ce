package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/fitbuddy/internal/flagx"
	"github.com/dmitrijs2005/fitbuddy/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "5s" or as integer nanoseconds.
type JsonConfig struct {
	FitnessAPIBaseURL string         `json:"fitness_api_base_url"`
	FitnessAPIKey     string         `json:"fitness_api_key"`
	DatabasePath      string         `json:"database_path"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with values from the JSON file selected via the
// -c/-config flags. Absent file path means no JSON is loaded. Only fields
// present in the file override earlier values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.FitnessAPIBaseURL != "" {
		cfg.FitnessAPIBaseURL = jc.FitnessAPIBaseURL
	}
	if jc.FitnessAPIKey != "" {
		cfg.FitnessAPIKey = jc.FitnessAPIKey
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
