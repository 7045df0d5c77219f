package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	NylasAPIKey  string
	NylasGrantID string

	// Optional with defaults
	NylasAPIURL  string
	NylasTimeout time.Duration
	HTTPPort     int
	LogLevel     string
	DevMode      bool
}

// fileConfig is the layout of the optional YAML file named by
// CALENDAR_CONFIG_FILE. Environment variables win over file values.
type fileConfig struct {
	Nylas struct {
		APIKey         string `yaml:"api_key"`
		GrantID        string `yaml:"grant_id"`
		APIURL         string `yaml:"api_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"nylas"`
	HTTPPort int    `yaml:"http_port"`
	LogLevel string `yaml:"log_level"`
	DevMode  bool   `yaml:"dev_mode"`
}

func defaults() *Config {
	return &Config{
		NylasAPIURL:  "https://api.us.nylas.com",
		NylasTimeout: 30 * time.Second,
		HTTPPort:     8080,
		LogLevel:     "info",
	}
}

// LoadFromEnv builds the config from defaults, then the optional YAML file,
// then the environment.
func LoadFromEnv() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CALENDAR_CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.NylasAPIKey = getEnvOrDefault("NYLAS_API_KEY", cfg.NylasAPIKey)
	cfg.NylasGrantID = getEnvOrDefault("NYLAS_GRANT_ID", cfg.NylasGrantID)
	cfg.NylasAPIURL = getEnvOrDefault("NYLAS_API_URL", cfg.NylasAPIURL)
	cfg.NylasTimeout = time.Duration(getEnvAsIntOrDefault("NYLAS_TIMEOUT_SECONDS", int(cfg.NylasTimeout/time.Second))) * time.Second
	cfg.HTTPPort = getEnvAsIntOrDefault("CALENDAR_HTTP_PORT", cfg.HTTPPort)
	cfg.LogLevel = getEnvOrDefault("CALENDAR_LOG_LEVEL", cfg.LogLevel)
	cfg.DevMode = getEnvAsBoolOrDefault("CALENDAR_DEV_MODE", cfg.DevMode)

	return cfg, nil
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	var errs []error
	if c.NylasAPIKey == "" {
		errs = append(errs, errors.New("NYLAS_API_KEY is required"))
	}
	if c.NylasGrantID == "" {
		errs = append(errs, errors.New("NYLAS_GRANT_ID is required"))
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("CALENDAR_HTTP_PORT %d is out of range", c.HTTPPort))
	}
	return errors.Join(errs...)
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Nylas.APIKey != "" {
		c.NylasAPIKey = fc.Nylas.APIKey
	}
	if fc.Nylas.GrantID != "" {
		c.NylasGrantID = fc.Nylas.GrantID
	}
	if fc.Nylas.APIURL != "" {
		c.NylasAPIURL = fc.Nylas.APIURL
	}
	if fc.Nylas.TimeoutSeconds > 0 {
		c.NylasTimeout = time.Duration(fc.Nylas.TimeoutSeconds) * time.Second
	}
	if fc.HTTPPort != 0 {
		c.HTTPPort = fc.HTTPPort
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.DevMode {
		c.DevMode = true
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
