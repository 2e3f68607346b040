package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Restaurants Core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Auth    AuthConfig    `yaml:"auth"`
	Docs    DocsConfig    `yaml:"docs"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	TLS      TLSConfig        `yaml:"tls"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
	CORS     CORSConfig       `yaml:"cors"`
}

// TLSConfig contains TLS certificate settings.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// APITimeoutConfig contains HTTP timeout settings (seconds).
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// CORSConfig contains Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
}

// MongoConfig contains MongoDB connection settings.
type MongoConfig struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	Collection     string `yaml:"collection"`
	ConnectTimeout int    `yaml:"connect_timeout"`
}

// AuthConfig contains the shared Basic-auth credential.
//
// Exactly one of Password or PasswordHash should be set. PasswordHash takes
// an Argon2id PHC string and is preferred for production; Password is
// compared in constant time and exists for development setups.
type AuthConfig struct {
	Realm        string `yaml:"realm"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// DocsConfig contains API documentation settings.
type DocsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: RESTAURANTS_SECTION_KEY
// For example: RESTAURANTS_MONGO_URI, RESTAURANTS_API_PORT
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 3000,
			Timeouts: APITimeoutConfig{
				Read:  30,
				Write: 30,
				Idle:  60,
			},
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "restaurants",
			Collection:     "restaurants",
			ConnectTimeout: 5,
		},
		Auth: AuthConfig{
			Realm:    "restaurants",
			Username: "admin",
		},
		Docs: DocsConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: RESTAURANTS_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// API
	if v := os.Getenv("RESTAURANTS_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("RESTAURANTS_API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.API.Port = port
		}
	}

	// Mongo
	if v := os.Getenv("RESTAURANTS_MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("RESTAURANTS_MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}

	// Auth - credentials (IMPORTANT: always override in production)
	if v := os.Getenv("RESTAURANTS_AUTH_USERNAME"); v != "" {
		cfg.Auth.Username = v
	}
	if v := os.Getenv("RESTAURANTS_AUTH_PASSWORD"); v != "" {
		cfg.Auth.Password = v
	}
	if v := os.Getenv("RESTAURANTS_AUTH_PASSWORD_HASH"); v != "" {
		cfg.Auth.PasswordHash = v
	}
}

// Validate checks the configuration for errors and security issues.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// API validation
	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}

	// Mongo validation
	if c.Mongo.URI == "" {
		errs = append(errs, "mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		errs = append(errs, "mongo.database is required")
	}
	if c.Mongo.Collection == "" {
		errs = append(errs, "mongo.collection is required")
	}

	// Auth validation - a credential is REQUIRED: every restaurant route
	// sits behind the Basic-auth gate, so an empty credential would either
	// lock out all clients or, worse, accept anything.
	if c.Auth.Username == "" {
		errs = append(errs, "auth.username is required")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		errs = append(errs, "auth.password or auth.password_hash is required (set RESTAURANTS_AUTH_PASSWORD environment variable)")
	}
	if c.Auth.Password != "" && c.Auth.PasswordHash != "" {
		errs = append(errs, "auth.password and auth.password_hash are mutually exclusive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}
