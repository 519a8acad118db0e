package config

import (
	"os"
	"strconv"

	"esgchat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Server   ServerConfig
	Data     DataConfig
}

// DatabaseConfig holds relational store settings
type DatabaseConfig struct {
	Driver string // "sqlite" or "postgres"
	URL    string // DSN; for sqlite this is the database file path
}

// AIConfig holds completion provider settings
type AIConfig struct {
	DefaultProvider string // "openai" or "anthropic"
	OpenAIKey       string
	OpenAIModel     string
	AnthropicKey    string
	AnthropicModel  string
	MaxTokens       int
	Temperature     float64
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds source data settings
type DataConfig struct {
	CSVFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			Driver: getEnvOrDefault("DATABASE_DRIVER", "sqlite"),
			URL:    getEnvOrDefault("DATABASE_URL", "./esg_data.db"),
		},
		AI: AIConfig{
			DefaultProvider: getEnvOrDefault("DEFAULT_AI_PROVIDER", "openai"),
			OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:     getEnvOrDefault("LLM_MODEL", "gpt-4"),
			AnthropicKey:    os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:  getEnvOrDefault("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
			MaxTokens:       getEnvIntOrDefault("MAX_TOKENS", 2000),
			Temperature:     getEnvFloatOrDefault("TEMPERATURE", 0.1),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Data: DataConfig{
			CSVFile: getEnvOrDefault("CSV_FILE", "Steel_Manufacturing_ESG_data.csv"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	switch config.Database.Driver {
	case "sqlite", "postgres":
	default:
		return errors.ConfigInvalid("DATABASE_DRIVER must be sqlite or postgres")
	}
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	switch config.AI.DefaultProvider {
	case "openai", "anthropic":
	default:
		return errors.ConfigInvalid("DEFAULT_AI_PROVIDER must be openai or anthropic")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
