package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ContentServer holds all configuration for the content server.
type ContentServer struct {
	// Network
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Sessions
	SessionTTLMinutes     int    `yaml:"session_ttl_minutes"`
	AccessTokenTTLSeconds int    `yaml:"access_token_ttl_seconds"`
	SessionSweepSeconds   int    `yaml:"session_sweep_seconds"`
	TokenSigningKey       string `yaml:"token_signing_key"`

	// Content cache
	ContentCacheTTLSeconds   int `yaml:"content_cache_ttl_seconds"`
	ContentCacheSweepSeconds int `yaml:"content_cache_sweep_seconds"`

	// Security
	AutoCreateAccounts bool `yaml:"auto_create_accounts"`
}

// SessionTTL returns the refresh-session lifetime.
func (c ContentServer) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// AccessTokenTTL returns the access-token lifetime.
func (c ContentServer) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSeconds) * time.Second
}

// SessionSweep returns the interval between expired-session sweeps.
func (c ContentServer) SessionSweep() time.Duration {
	return time.Duration(c.SessionSweepSeconds) * time.Second
}

// ContentCacheTTL returns how long resolved content records stay cached.
func (c ContentServer) ContentCacheTTL() time.Duration {
	return time.Duration(c.ContentCacheTTLSeconds) * time.Second
}

// ContentCacheSweep returns the interval between cache sweeps.
func (c ContentServer) ContentCacheSweep() time.Duration {
	return time.Duration(c.ContentCacheSweepSeconds) * time.Second
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultContentServer returns ContentServer config with sensible defaults.
func DefaultContentServer() ContentServer {
	return ContentServer{
		BindAddress:              "0.0.0.0",
		Port:                     8650,
		SessionTTLMinutes:        720,
		AccessTokenTTLSeconds:    900,
		SessionSweepSeconds:      300,
		ContentCacheTTLSeconds:   30,
		ContentCacheSweepSeconds: 60,
		AutoCreateAccounts:       false,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "cultivator",
			Password: "cultivator",
			DBName:   "cultivator",
			SSLMode:  "disable",
		},
	}
}

// LoadContentServer loads content server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadContentServer(path string) (ContentServer, error) {
	cfg := DefaultContentServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.TokenSigningKey == "" {
		cfg.TokenSigningKey = os.Getenv("CULTIVATOR_TOKEN_KEY")
	}

	return cfg, nil
}
