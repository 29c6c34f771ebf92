package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
	TraceStdout     bool

	// transaction service only
	BalancesServiceURL string
	BalancesTimeout    time.Duration
	KafkaBrokers       []string
	KafkaTopic         string
}

// LoadConfig reads an optional .env file and then the environment.
// defaultPort differs per service.
func LoadConfig(defaultPort string) *Config {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on System Env Variables")
	}

	return &Config{
		Port:               getEnv("PORT", defaultPort),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		TraceStdout:        getEnvBool("TRACE_STDOUT", false),
		BalancesServiceURL: getEnv("BALANCES_SERVICE_URL", "http://localhost:8081/api/balances"),
		BalancesTimeout:    getEnvDuration("BALANCES_TIMEOUT", 5*time.Second),
		KafkaBrokers:       getEnvList("KAFKA_BROKERS"),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "transaction_recorded"),
	}
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("Invalid duration, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

func getEnvBool(key string, fallback bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("Invalid boolean, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return b
}

func getEnvLevel(key string, fallback slog.Level) slog.Level {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		slog.Warn("Invalid log level, using default", "key", key, "value", value)
		return fallback
	}
	return level
}

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string) []string {
	var items []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
