// Package config handles configuration for the Croissant backend: defaults,
// an optional JSON file, an optional .env file, environment variables and
// command-line flags, applied in that order and validated once at startup.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects the store behind every command. It is fixed at startup.
type Mode string

const (
	ModeLive Mode = "live"
	ModeMock Mode = "mock"

	// ModeDatabase is the legacy spelling of ModeLive.
	ModeDatabase Mode = "database"
)

// Account table presets, see accounts.SchemaFor.
const (
	AccountSchemaLive = "live"
	AccountSchemaDev  = "dev"
)

// DatabaseConfig holds the named values the connection descriptor is built
// from. Password has no default; its absence is reported when the descriptor
// is built, so Mock mode can run without it.
type DatabaseConfig struct {
	Host          string `koanf:"host" validate:"required"`
	Port          string `koanf:"port" validate:"required,numeric"`
	User          string `koanf:"user" validate:"required"`
	Password      string `koanf:"password"`
	Name          string `koanf:"name" validate:"required"`
	SSLMode       string `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	AccountSchema string `koanf:"account_schema" validate:"oneof=live dev"`
}

// Config holds runtime settings for the Croissant backend.
type Config struct {
	Database   DatabaseConfig `koanf:"database"`
	Mode       Mode           `koanf:"mode" validate:"oneof=live mock"`
	HTTPAddr   string         `koanf:"http_addr" validate:"required"`
	LogLevel   string         `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat  string         `koanf:"log_format" validate:"oneof=json text console"`
	BcryptCost int            `koanf:"bcrypt_cost" validate:"min=4,max=31"`
	Demo       bool           `koanf:"demo"`
	LocalDev   bool           `koanf:"local_dev"`
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Database = DatabaseConfig{
		Host:          "localhost",
		Port:          "5432",
		User:          "postgres",
		Name:          "defaultdb",
		SSLMode:       "disable",
		AccountSchema: AccountSchemaLive,
	}
	c.Mode = ModeLive
	c.HTTPAddr = "127.0.0.1:3001"
	c.LogLevel = "info"
	c.LogFormat = "json"
	c.BcryptCost = 10
	c.Demo = true
	c.LocalDev = false
}

func (c *Config) normalize() {
	if strings.EqualFold(string(c.Mode), string(ModeDatabase)) {
		c.Mode = ModeLive
	}
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the .env file, the environment and finally
// command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
