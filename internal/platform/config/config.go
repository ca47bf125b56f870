// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	CORS      CORSConfig      `koanf:"cors"`
	Store     StoreConfig     `koanf:"store"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// AuthConfig holds credential and token settings.
type AuthConfig struct {
	JWTSecret  string          `koanf:"jwt_secret"`
	Issuer     string          `koanf:"issuer"`
	TokenTTL   time.Duration   `koanf:"token_ttl"`
	BcryptCost int             `koanf:"bcrypt_cost"`
	RateLimit  RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig holds the per-client token bucket applied to the signup
// and login routes.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
	MaxClients        int     `koanf:"max_clients"`
}

// CORSConfig holds cross-origin settings for browser clients.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// StoreConfig holds settings for the in-memory stores.
type StoreConfig struct {
	SeedTasks []SeedTask `koanf:"seed_tasks"`
}

// SeedTask is a task inserted at startup.
type SeedTask struct {
	Title    string `koanf:"title"`
	Priority int    `koanf:"priority"`
	Deadline string `koanf:"deadline"`
}
