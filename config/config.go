package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration (optional; disables rate limiting when absent)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// LLM configuration
	LLMEndpoint  string
	LLMAPIKey    string
	LLMModelName string

	// Admin configuration
	CleanDatabasePassword string
}

// LoadConfig creates a new Config instance from environment variables. A .env
// file in the working directory is honored when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine: in containers everything comes from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "recipes"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		LLMEndpoint:  os.Getenv("LLM_ENDPOINT"),
		LLMAPIKey:    os.Getenv("LLM_API_KEY"),
		LLMModelName: os.Getenv("LLM_MODEL_NAME"),

		CleanDatabasePassword: os.Getenv("CLEAN_DATABASE_PASSWORD"),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks that the settings the core contract depends on are present.
func validate(cfg *Config) error {
	if cfg.LLMEndpoint == "" {
		return fmt.Errorf("LLM_ENDPOINT must be set")
	}
	if cfg.LLMModelName == "" {
		return fmt.Errorf("LLM_MODEL_NAME must be set")
	}
	if cfg.CleanDatabasePassword == "" {
		return fmt.Errorf("CLEAN_DATABASE_PASSWORD must be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
