package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the optional TOML configuration file contents.
type Config struct {
	Logging LoggingConfig  `toml:"logging"`
	Default DefaultsConfig `toml:"defaults"`
}

// LoggingConfig controls log level and optional rotated file output.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultsConfig carries fallback values for command flags.
type DefaultsConfig struct {
	Algorithm string `toml:"algorithm"`
}

// loadConfig reads the TOML configuration at path. A missing file is fine
// when the user never asked for one.
func loadConfig(path string, explicit bool) (*Config, error) {
	cfg := &Config{
		Logging: LoggingConfig{Level: "info"},
		Default: DefaultsConfig{Algorithm: "edmondskarp"},
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	return cfg, nil
}

// initLogging configures logrus from the config: text formatter with full
// timestamps, optional rotated file output alongside stderr.
func initLogging(cfg *Config, verbose bool) {
	var out io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.Logging.File,
			MaxSize:    50, // MB
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stderr, fileLogger)
	}
	log.SetOutput(out)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := log.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = log.InfoLevel
	}
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}
