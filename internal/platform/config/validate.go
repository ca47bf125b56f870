package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	minJWTSecretLen = 32
	minBcryptCost   = 4
	maxBcryptCost   = 31
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Auth.validate(),
		c.Store.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	var errs []error

	if len(a.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d bytes", minJWTSecretLen))
	}
	if a.TokenTTL < time.Minute {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be at least 1m, got %s", a.TokenTTL))
	}
	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		errs = append(errs, fmt.Errorf("auth.bcrypt_cost must be between %d and %d, got %d",
			minBcryptCost, maxBcryptCost, a.BcryptCost))
	}
	if a.RateLimit.RequestsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("auth.rate_limit.requests_per_second must be positive, got %g",
			a.RateLimit.RequestsPerSecond))
	}
	if a.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("auth.rate_limit.burst must be >= 1, got %d", a.RateLimit.Burst))
	}
	if a.RateLimit.MaxClients < 1 {
		errs = append(errs, fmt.Errorf("auth.rate_limit.max_clients must be >= 1, got %d", a.RateLimit.MaxClients))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	for i, seed := range s.SeedTasks {
		if seed.Title == "" {
			errs = append(errs, fmt.Errorf("store.seed_tasks[%d].title must not be empty", i))
		}
		if seed.Deadline == "" {
			errs = append(errs, fmt.Errorf("store.seed_tasks[%d].deadline must not be empty", i))
		}
	}

	return errors.Join(errs...)
}
