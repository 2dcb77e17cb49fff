// Package config loads runtime configuration from the environment, with an
// optional .env file layered underneath.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/jexlaindia/app/internal/normalize"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment is the deployment environment the process runs in.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds every setting the API reads at startup.
type Config struct {
	MongoURL    string
	DBName      string
	CORSOrigins []string
	Port        string
	GRPCPort    string // empty disables the gRPC health listener
	TLSCert     string
	TLSKey      string
	Environment Environment
	LogLevel    string
}

// GRPCTLSEnabled reports whether the gRPC listener serves TLS.
func (c *Config) GRPCTLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// bindings maps config keys to the environment variables that feed them.
var bindings = [][2]string{
	{"mongo_url", "MONGO_URL"},
	{"db_name", "DB_NAME"},
	{"cors_origins", "CORS_ORIGINS"},
	{"port", "PORT"},
	{"grpc_port", "GRPC_PORT"},
	{"tls_cert", "TLS_CERT"},
	{"tls_key", "TLS_KEY"},
	{"environment", "ENVIRONMENT"},
	{"log_level", "LOG_LEVEL"},
}

// LoadDotEnv reads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

// LoadConfig builds a Config from the environment and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("cors_origins", "*")
	v.SetDefault("port", "8000")
	v.SetDefault("environment", string(EnvDevelopment))
	v.SetDefault("log_level", "info")

	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b[1], err)
		}
	}

	cfg := &Config{
		MongoURL:    strings.TrimSpace(v.GetString("mongo_url")),
		DBName:      strings.TrimSpace(v.GetString("db_name")),
		CORSOrigins: normalize.Origins(v.GetString("cors_origins")),
		Port:        v.GetString("port"),
		GRPCPort:    v.GetString("grpc_port"),
		TLSCert:     v.GetString("tls_cert"),
		TLSKey:      v.GetString("tls_key"),
		Environment: Environment(strings.ToLower(v.GetString("environment"))),
		LogLevel:    v.GetString("log_level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURL == "" {
		missing = append(missing, "MONGO_URL")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	switch c.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid ENVIRONMENT %q: must be %q or %q", c.Environment, EnvDevelopment, EnvProduction)
	}

	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return nil
}
