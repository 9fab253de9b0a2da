// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that required
// values are present so they can be reused across the application runtime.
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

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the prefix PRODUCTS_. The prefix is removed, the
	rest is lowercased, and a double underscore marks nesting:

	  PRODUCTS_SERVER__PORT         -> server.port         -> Config.Server.Port
	  PRODUCTS_STORAGE__DRIVER      -> storage.driver      -> Config.Storage.Driver
	  PRODUCTS_DATABASE__SSL_MODE   -> database.ssl_mode   -> Config.Database.SSLMode
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "PRODUCTS_"

// Storage drivers accepted by StorageConfig.Driver.
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config is the root configuration object for the application.
//
// Database and Redis are pointers because only the block matching
// Storage.Driver is needed. Observability is optional and defaulted.
//
// List values such as server.cors_allowed_origins are comma separated.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Storage       StorageConfig        `koanf:"storage" validate:"required"`
	Database      *DatabaseConfig      `koanf:"database"`
	Redis         *RedisConfig         `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// StorageConfig selects the backend holding the products table.
type StorageConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory redis postgres"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port".
type RedisConfig struct {
	Address  string `koanf:"address" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
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

	// Observability starts from defaults; env vars only override what they set.
	mainConfig := &Config{Observability: DefaultObservabilityConfig()}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Lists arrive as a single comma-separated env value.
	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.validateStorage(validate); err != nil {
		return nil, err
	}

	// Service name is fixed; environment always follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// validateStorage requires the connection block for the selected driver.
func (c *Config) validateStorage(validate *validator.Validate) error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database == nil {
			return fmt.Errorf("storage driver %q requires the database config block", c.Storage.Driver)
		}
		if err := validate.Struct(c.Database); err != nil {
			return fmt.Errorf("database config validation failed: %w", err)
		}
	case DriverRedis:
		if c.Redis == nil {
			return fmt.Errorf("storage driver %q requires the redis config block", c.Storage.Driver)
		}
		if err := validate.Struct(c.Redis); err != nil {
			return fmt.Errorf("redis config validation failed: %w", err)
		}
	}
	return nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
