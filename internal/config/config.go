package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration
	Environment     string

	// OpenTelemetry trace export; disabled when OTLPEndpoint is empty
	OTLPEndpoint string
	OTLPHeaders  map[string]string
	ServiceName  string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Environment:     getEnv("DEPLOY_ENV", "development"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTLPHeaders:  parseHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", "")),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "cycle-phase-api"),
	}
}

// TracingEnabled reports whether an OTLP endpoint is configured.
func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default",
			"key", key,
			"value", value,
			"default", defaultValue.String())
		return defaultValue
	}
	return d
}

// parseHeaders reads the OTLP "key1=value1,key2=value2" header list.
func parseHeaders(raw string) map[string]string {
	headers := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers
}
