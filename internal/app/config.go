package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/ringgen/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is an optional HCL file or directory of parameter files.
	ConfigPath string
	// Flags holds only the values explicitly set on the command line. They
	// take precedence over the parameter file and the environment.
	Flags config.Model
	// Invocation is recorded in every generated file.
	Invocation string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Invocation == "" {
		return nil, errors.New("Invocation is a required configuration field and cannot be empty")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
