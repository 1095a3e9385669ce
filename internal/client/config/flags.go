package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fitbuddy/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the exercises API
//	-k string   API key for the exercises API
//	-d string   path to the client database file
//	-t int      request timeout in seconds
//
// The function filters os.Args to only the flags it owns, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.FitnessAPIBaseURL, "a", cfg.FitnessAPIBaseURL, "base URL of the exercises API")
	fs.StringVar(&cfg.FitnessAPIKey, "k", cfg.FitnessAPIKey, "exercises API key")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the client database file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
