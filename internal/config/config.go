// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the SCHEDULER_ prefix, lowercased, and a double
	underscore marks a nesting level, so single underscores survive inside
	key names:

	  SCHEDULER_DATABASE__SSL_MODE -> database.ssl_mode -> Config.Database.SSLMode
	  SCHEDULER_PRIMARY__ENV       -> primary.env       -> Config.Primary.Env
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "SCHEDULER_"

// ServiceName tags logs and metrics emitted by this service.
const ServiceName = "scheduler"

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig selects the storage driver and holds its connection
// parameters and pool tuning.
//
// Driver "postgres" uses the host/port/user/password/name/ssl_mode block;
// driver "sqlite" uses Path (":memory:" for an ephemeral database).
type DatabaseConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string        `koanf:"host" validate:"required_if=Driver postgres"`
	Port            int           `koanf:"port" validate:"required_if=Driver postgres"`
	User            string        `koanf:"user" validate:"required_if=Driver postgres"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required_if=Driver postgres"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required_if=Driver postgres"`
	Path            string        `koanf:"path" validate:"required_if=Driver sqlite"`
	MaxConns        int32         `koanf:"max_conns" validate:"min=0"`
	MinConns        int32         `koanf:"min_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, validates it, applies defaults, and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
