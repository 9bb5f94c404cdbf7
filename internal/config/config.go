// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds configuration for the API server and the background workers,
// loaded from config.yml and environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	DBSSLMode      string `mapstructure:"DB_SSLMODE"`
	DBReset        bool   `mapstructure:"DB_RESET"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	// Service tokens for worker-issued mutations. Empty disables verification.
	ServiceJWTSecret string `mapstructure:"SERVICE_JWT_SECRET"`

	// Worker settings.
	APIBaseURL       string `mapstructure:"API_BASE_URL"`
	AgentPort        string `mapstructure:"AGENT_PORT"`
	AgentIntervalSec int    `mapstructure:"AGENT_INTERVAL_SECONDS"`
	LLMBaseURL       string `mapstructure:"LLM_BASE_URL"`
	LLMAPIKey        string `mapstructure:"LLM_API_KEY"`
	LLMModel         string `mapstructure:"LLM_MODEL"`
}

// AgentInterval returns the worker loop sleep interval.
func (c *Config) AgentInterval() time.Duration {
	return time.Duration(c.AgentIntervalSec) * time.Second
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; environment variables and defaults cover
	// the container deployment.
	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "mydatabase")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_RESET", false)
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("SERVICE_JWT_SECRET", "")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("AGENT_PORT", "8001")
	viper.SetDefault("AGENT_INTERVAL_SECONDS", 60)
	viper.SetDefault("LLM_BASE_URL", "http://localhost:11434/v1")
	viper.SetDefault("LLM_API_KEY", "ollama")
	viper.SetDefault("LLM_MODEL", "gemma2:latest")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.AgentIntervalSec <= 0 {
		return errors.New("AGENT_INTERVAL_SECONDS must be positive")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.DBReset {
			return errors.New("DB_RESET must not be enabled in production")
		}
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.ServiceJWTSecret != "" && len(c.ServiceJWTSecret) < 32 {
			return errors.New("SERVICE_JWT_SECRET must be at least 32 characters in production")
		}
		if c.DBSSLMode == "disable" {
			log.Println("WARNING: DB_SSLMODE is 'disable' in production. It is highly recommended to use SSL for database connections.")
		}
	}

	return nil
}
