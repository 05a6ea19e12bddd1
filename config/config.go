package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	// Database
	DatabaseURL string `yaml:"database_url"`
	AutoMigrate bool   `yaml:"auto_migrate"`

	// Server
	ServerPort   string        `yaml:"server_port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// Metrics
	MetricsEnabled bool `yaml:"metrics_enabled"`

	// Dashboard
	DefaultPlantID string `yaml:"default_plant_id"`
}

// Load loads configuration from environment variables, then overlays the
// YAML file named by CONFIG_FILE when it is set.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", "postgres://localhost/part_tracker?sslmode=disable"),
		AutoMigrate:    getEnvBool("AUTO_MIGRATE", true),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ReadTimeout:    getEnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		DefaultPlantID: getEnv("DEFAULT_PLANT_ID", ""),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := cfg.overlay(data); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// overlay applies the keys present in a YAML document on top of cfg
func (c *Config) overlay(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	if c.ServerPort == "" {
		return fmt.Errorf("server_port must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
