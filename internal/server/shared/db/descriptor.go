// Package db turns configuration into store connections: Descriptor is the
// immutable connection description and Provider hands out one connection per
// operation.
package db

import (
	"net"
	"net/url"

	"github.com/dmitrijs2005/croissant/internal/common"
	"github.com/dmitrijs2005/croissant/internal/server/config"
)

// Descriptor holds everything needed to open a store connection. Build it
// with BuildDescriptor; it is never modified afterwards.
type Descriptor struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Defaults applied to empty configuration values.
const (
	DefaultHost    = "localhost"
	DefaultPort    = "5432"
	DefaultUser    = "postgres"
	DefaultName    = "defaultdb"
	DefaultSSLMode = "disable"
)

// BuildDescriptor derives a Descriptor from c. The password has no default:
// when it is empty a config error wrapping common.ErrMissingSecret is
// returned. It has no side effects.
func BuildDescriptor(c config.DatabaseConfig) (Descriptor, error) {
	if c.Password == "" {
		return Descriptor{}, common.ConfigError(common.ErrMissingSecret)
	}

	return Descriptor{
		Host:     orDefault(c.Host, DefaultHost),
		Port:     orDefault(c.Port, DefaultPort),
		User:     orDefault(c.User, DefaultUser),
		Password: c.Password,
		Name:     orDefault(c.Name, DefaultName),
		SSLMode:  orDefault(c.SSLMode, DefaultSSLMode),
	}, nil
}

// DSN renders the descriptor as a postgres:// URL with every component
// escaped.
func (d Descriptor) DSN() string {
	return d.url().String()
}

// String is DSN with the password masked, safe for logs.
func (d Descriptor) String() string {
	return d.url().Redacted()
}

func (d Descriptor) url() *url.URL {
	return &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
