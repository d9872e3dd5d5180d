package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// logConfig reads logging settings from the environment; the config file
// can set the same keys under log:.
type logConfig struct {
	Level string `env:"BEADVOICE_LOG_LEVEL"`
	File  string `env:"BEADVOICE_LOG_FILE"`
}

// setupLog configures the default charm logger and returns a closer for the
// optional log file.
func setupLog() (func() error, error) {
	cfg, err := env.ParseAs[logConfig]()
	if err != nil {
		return nil, fmt.Errorf("error parsing log config: %w", err)
	}
	if cfg.Level == "" {
		cfg.Level = viper.GetString("log.level")
	}
	if cfg.File == "" {
		cfg.File = viper.GetString("log.file")
	}

	if cfg.Level != "" {
		lvl, err := log.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		log.SetLevel(lvl)
	}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		log.SetOutput(f)
		log.SetReportTimestamp(true)
		return f.Close, nil
	}

	return func() error { return nil }, nil
}
