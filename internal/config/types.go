package config

import (
	"fmt"

	"github.com/midir99/admint/internal/addr"
)

// CurrentVersion is written into new config files
const CurrentVersion = "v1"

// Output formats understood by the printer
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds client-side defaults. Every field is optional; command line
// arguments always take precedence.
type Config struct {
	Version string `yaml:"version"`
	// ServerAddress is used when --server-address is not given
	ServerAddress string `yaml:"server_address,omitempty"`
	// Output selects how a built command is printed
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output:  OutputYAML,
	}
}

// Validate performs validation on the Config struct
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}

	if c.ServerAddress != "" {
		if _, err := addr.ParseSocketV4(c.ServerAddress); err != nil {
			return fmt.Errorf("server_address: %w", err)
		}
	}

	switch c.Output {
	case "", OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("invalid output %q: must be %s or %s", c.Output, OutputYAML, OutputJSON)
	}

	return nil
}

// OutputFormat returns the configured output, defaulting to yaml
func (c *Config) OutputFormat() string {
	if c.Output == "" {
		return OutputYAML
	}
	return c.Output
}
