package config

const (
	defaultServerPort = 8080

	defaultBcryptCost    = 10
	defaultRateLimitRPS  = 1.0
	defaultRateLimitBurst = 5
	defaultMaxClients    = 10000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "taskboard-api",

		"auth.jwt_secret":                     "",
		"auth.issuer":                         "taskboard-api",
		"auth.token_ttl":                      "1h",
		"auth.bcrypt_cost":                    defaultBcryptCost,
		"auth.rate_limit.requests_per_second": defaultRateLimitRPS,
		"auth.rate_limit.burst":               defaultRateLimitBurst,
		"auth.rate_limit.max_clients":         defaultMaxClients,
	}
}
