package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// StorageSettings holds the attachment file store settings
type StorageSettings struct {
	Path string `mapstructure:"path" validate:"required"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	return nil
}

// RestConfig aggregates all settings for the REST application
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Database DatabaseSettings `mapstructure:"database"`
	Storage  StorageSettings  `mapstructure:"storage"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// Validate checks that all fields in RestConfig are valid
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the YAML config file at configPath and applies
// FRIDAI_-prefixed environment overrides (for example FRIDAI_DATABASE_DSN).
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("FRIDAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "./data/app.db")
	v.SetDefault("storage.path", "./storage")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
