package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Logging  LoggingConfig
	Security SecurityConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Environment string
}

type LoggingConfig struct {
	Level string
	File  string
}

type SecurityConfig struct {
	BCryptCost int
}

type MetricsConfig struct {
	// File receives a Prometheus text dump at exit when set
	File string
}

// Load reads .env files when present and then the process environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "error")),
			File:  getEnv("LOG_FILE", ""),
		},
		Security: SecurityConfig{
			BCryptCost: getIntEnv("BCRYPT_COST", 12),
		},
		Metrics: MetricsConfig{
			File: getEnv("METRICS_FILE", ""),
		},
	}
}

// IsProduction switches the stderr log output to JSON
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
