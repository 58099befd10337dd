// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr        string
	RedisAddr       string
	LogLevel        logrus.Level
	ShutdownTimeout time.Duration

	OllamaURL          string
	OllamaModel        string
	AdvisorTimeout     time.Duration
	AdvisorTemperature float64
}

func Load() (Config, error) {
	logLevel, err := logrus.ParseLevel(getEnvOrDefault("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing SHUTDOWN_TIMEOUT: %w", err)
	}

	advisorTimeout, err := time.ParseDuration(getEnvOrDefault("ADVISOR_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parsing ADVISOR_TIMEOUT: %w", err)
	}

	temperature, err := strconv.ParseFloat(getEnvOrDefault("ADVISOR_TEMPERATURE", "0.2"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parsing ADVISOR_TEMPERATURE: %w", err)
	}

	return Config{
		HTTPAddr:           getEnvOrDefault("HTTP_ADDR", ":8080"),
		RedisAddr:          getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		LogLevel:           logLevel,
		ShutdownTimeout:    shutdownTimeout,
		OllamaURL:          getEnvOrDefault("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:        getEnvOrDefault("OLLAMA_MODEL", "llama3.1"),
		AdvisorTimeout:     advisorTimeout,
		AdvisorTemperature: temperature,
	}, nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
