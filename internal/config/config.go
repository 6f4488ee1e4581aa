package config

import (
	"fmt"
	"os"

	"github.com/gostonefire/courseplanner/internal/conf"
	"github.com/gostonefire/courseplanner/internal/hash"
	"github.com/gostonefire/courseplanner/internal/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Table struct {
		Size int64  `yaml:"size"`
		Hash string `yaml:"hash"`
	} `yaml:"table"`

	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`

	Data struct {
		File string `yaml:"file"`
	} `yaml:"data"`
}

// Environment variables overriding the configuration file
const (
	EnvTableSize = "COURSEPLANNER_TABLE_SIZE"
	EnvHash      = "COURSEPLANNER_HASH"
	EnvLogLevel  = "COURSEPLANNER_LOG_LEVEL"
	EnvLogPretty = "COURSEPLANNER_LOG_PRETTY"
	EnvDataFile  = "COURSEPLANNER_DATA_FILE"
)

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error, defaults are used instead.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err = yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	loadFromEnv(config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Table.Size = conf.DefaultTableSize
	config.Table.Hash = hash.Polynomial

	config.Logging.Level = string(logger.WarnLevel)
	config.Logging.Pretty = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Table.Size = GetEnvAsInt64(EnvTableSize, config.Table.Size)
	config.Table.Hash = GetEnv(EnvHash, config.Table.Hash)
	config.Logging.Level = GetEnv(EnvLogLevel, config.Logging.Level)
	config.Logging.Pretty = GetEnvAsBool(EnvLogPretty, config.Logging.Pretty)
	config.Data.File = GetEnv(EnvDataFile, config.Data.File)
}

// Validate ensures that the configuration is valid
func (c *Config) Validate() error {
	if c.Table.Size <= 0 || c.Table.Size > conf.MaxTableSize {
		return fmt.Errorf("table size must be between 1 and %d", conf.MaxTableSize)
	}

	if !hash.IsKnown(c.Table.Hash) {
		return fmt.Errorf("unknown hash algorithm %q", c.Table.Hash)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	return nil
}

// LoggerConfig returns the logger configuration derived from the logging section
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  logger.LogLevel(c.Logging.Level),
		Pretty: c.Logging.Pretty,
	}
}
