package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/croissant/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bridge bind address (e.g., "127.0.0.1:3001")
//	-m string   store mode: live or mock
//	-l string   log level: debug, info, warn, error
//	-f string   log format: json, text, console
//
// Only these flags are considered; -c and -env are handled by their own
// layers.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the HTTP bridge")
	mode := fs.String("m", string(config.Mode), "store mode (live|mock)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text|console)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.Mode = Mode(*mode)
}
