// Package config loads application configuration from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Scryfall ScryfallConfig `mapstructure:"scryfall"`
	Match    MatchConfig    `mapstructure:"match"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// ScryfallConfig contains the card-lookup client settings.
type ScryfallConfig struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent    string        `mapstructure:"user_agent" validate:"required"`
	RequestDelay time.Duration `mapstructure:"request_delay" validate:"gte=0"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
}

// MatchConfig contains match-registry settings.
type MatchConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout" validate:"gte=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gt=0"`
}

// Load reads configuration from environment variables (CARDTABLE_ prefix)
// and an optional config.yaml in the working directory. Environment values
// take precedence. The result is validated before it is returned.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("scryfall.base_url", "https://api.scryfall.com")
	v.SetDefault("scryfall.user_agent", "cardtable/1.0")
	v.SetDefault("scryfall.request_delay", 100*time.Millisecond)
	v.SetDefault("scryfall.cache_ttl", 5*time.Minute)
	v.SetDefault("match.idle_timeout", 2*time.Hour)
	v.SetDefault("match.sweep_interval", 10*time.Minute)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CARDTABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}
