package cli

import "os"

// Config holds CLI configuration
type Config struct {
	// ServerURL is the base URL of the boardnight server
	ServerURL string
	// Output is the output format: text or json
	Output string
	// Verbose enables verbose output
	Verbose bool
}

// DefaultConfig returns CLI defaults, overridable from the environment
func DefaultConfig() *Config {
	cfg := &Config{
		ServerURL: "http://localhost:8080",
		Output:    "text",
	}

	if v := os.Getenv("BOARDNIGHT_SERVER"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("BOARDNIGHT_OUTPUT"); v != "" {
		cfg.Output = v
	}

	return cfg
}
