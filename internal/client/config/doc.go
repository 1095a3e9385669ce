// Package config loads runtime configuration for the FitBuddy CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (FITNESS_API_BASE_URL, FITNESS_API_KEY,
//     FITBUDDY_DB), including values loaded from a .env file at startup.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override everything earlier.
//
// Supported flags
//
//	-a string   base URL of the exercises API
//	-k string   exercises API key
//	-d string   path to the client database file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so the timeout can be either a
// string like "5s" or integer nanoseconds:
//
//	{
//	  "fitness_api_base_url": "https://api.api-ninjas.com/v1",
//	  "fitness_api_key": "…",
//	  "database_path": "fitbuddy.db",
//	  "request_timeout": "5s"
//	}
package config
