package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Config holds all service settings.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Minio    MinioConfig    `koanf:"minio"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	Port        int    `koanf:"port"`
	Prefix      string `koanf:"prefix"`
	CORSOrigins string `koanf:"cors_origins"`
}

// DatabaseConfig accepts either a full URL or discrete connection fields. URL wins when both are set.
type DatabaseConfig struct {
	URL      string `koanf:"url"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

// MinioConfig is optional. Snapshots are only available when it is complete.
type MinioConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	SSL       bool   `koanf:"ssl"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Enabled reports whether any MinIO setting was provided.
func (m MinioConfig) Enabled() bool {
	return m.Endpoint != "" || m.AccessKey != "" || m.SecretKey != "" || m.Bucket != ""
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Validate checks required settings and cross-field rules.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid server port %d", c.Server.Port)
	}
	if !strings.HasPrefix(c.Server.Prefix, "/") {
		return errors.Errorf("api prefix %q must start with /", c.Server.Prefix)
	}

	if c.Database.URL != "" {
		if _, err := url.Parse(c.Database.URL); err != nil {
			return errors.Wrap(err, "invalid DATABASE_URL")
		}
	} else if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		return errors.New("database configuration is incomplete")
	}

	m := c.Minio
	if m.Enabled() && (m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "") {
		return errors.New("minio configuration is incomplete")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return errors.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
