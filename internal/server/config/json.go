package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/croissant/internal/flagx"
)

// JsonConfig is the on-disk shape of the optional config file. Pointer
// fields distinguish "absent" from "false" for the feature switches.
type JsonConfig struct {
	DBHost          string `json:"db_host"`
	DBPort          string `json:"db_port"`
	DBUser          string `json:"db_user"`
	DBPassword      string `json:"db_password"`
	DBName          string `json:"db_name"`
	DBSSLMode       string `json:"db_ssl_mode"`
	DBAccountSchema string `json:"db_account_schema"`
	Mode            string `json:"mode"`
	HTTPAddr        string `json:"http_addr"`
	LogLevel        string `json:"log_level"`
	LogFormat       string `json:"log_format"`
	BcryptCost      int    `json:"bcrypt_cost"`
	Demo            *bool  `json:"demo"`
	LocalDev        *bool  `json:"local_dev"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Empty fields keep their current value. An unreadable file or invalid JSON
// panics, as this only runs at startup.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.Database.Host, c.DBHost)
	setString(&config.Database.Port, c.DBPort)
	setString(&config.Database.User, c.DBUser)
	setString(&config.Database.Password, c.DBPassword)
	setString(&config.Database.Name, c.DBName)
	setString(&config.Database.SSLMode, c.DBSSLMode)
	setString(&config.Database.AccountSchema, c.DBAccountSchema)
	if c.Mode != "" {
		config.Mode = Mode(c.Mode)
	}
	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.Demo != nil {
		config.Demo = *c.Demo
	}
	if c.LocalDev != nil {
		config.LocalDev = *c.LocalDev
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
