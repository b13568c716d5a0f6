package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

const ConfigPathEnvVar = "CONFIG_PATH"

var envMappings = map[string]string{
	"port":             "server.port",
	"api_prefix":       "server.prefix",
	"cors_origins":     "server.cors_origins",
	"database_url":     "database.url",
	"db_host":          "database.host",
	"db_port":          "database.port",
	"db_user":          "database.user",
	"db_password":      "database.password",
	"db_name":          "database.name",
	"db_sslmode":       "database.sslmode",
	"minio_endpoint":   "minio.endpoint",
	"minio_access_key": "minio.access_key",
	"minio_secret_key": "minio.secret_key",
	"minio_bucket":     "minio.bucket",
	"minio_ssl":        "minio.ssl",
	"log_level":        "logging.level",
	"log_format":       "logging.format",
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8001,
			Prefix:      "/api",
			CORSOrigins: "*",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads envFile (if it exists) into the process environment, then layers
// defaults, an optional YAML file and environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "load %s", envFile)
		}
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", path)
		}
	}
	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransform maps known variables onto config keys and drops the rest.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}
