package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/croissant/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envKeys maps the recognised environment variables onto koanf paths.
// Anything else in the environment is ignored.
var envKeys = map[string]string{
	"DB_HOST":           "database.host",
	"DB_PORT":           "database.port",
	"DB_USER":           "database.user",
	"DB_PASSWORD":       "database.password",
	"DB_NAME":           "database.name",
	"DB_SSL_MODE":       "database.ssl_mode",
	"DB_ACCOUNT_SCHEMA": "database.account_schema",
	"DB_MODE":           "mode",
	"HTTP_ADDR":         "http_addr",
	"LOG_LEVEL":         "log_level",
	"LOG_FORMAT":        "log_format",
	"BCRYPT_COST":       "bcrypt_cost",
	"APP_DEMO":          "demo",
	"APP_LOCAL_DEV":     "local_dev",
}

// parseEnv loads the dotenv file named by -env (".env" by default, a missing
// file is fine) into the process environment and then overlays the
// recognised variables onto config. Variables already set in the environment
// take precedence over the dotenv file.
func parseEnv(config *Config) error {
	if err := loadDotEnv(flagx.EnvFileFlags()); err != nil {
		return err
	}

	k := koanf.New(".")

	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", config); err != nil {
		return fmt.Errorf("decode env: %w", err)
	}

	return nil
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
