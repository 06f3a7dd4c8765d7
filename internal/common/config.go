package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ecom-insights/listing-attributes/internal/llm"
)

// Config holds all application configuration
type Config struct {
	LLM   LLMConfig
	Batch BatchConfig
	Runs  RunsConfig
}

// LLMConfig holds the DeepSeek client configuration
type LLMConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Temperature       float32
	Timeout           time.Duration
	Retry             llm.Policy
	RequestsPerSecond float64
	PriceThreshold    float64
}

// BatchConfig holds concurrency settings for the LLM pass
type BatchConfig struct {
	Workers int
}

// RunsConfig holds the run-history database location
type RunsConfig struct {
	DBPath string
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment.
func LoadConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		LLM: LLMConfig{
			APIKey:      getEnv("DEEPSEEK_API_KEY", ""),
			BaseURL:     getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1"),
			Model:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
			Retry: llm.Policy{
				MaxAttempts: getEnvAsInt("MAX_RETRIES", 3),
				Delay:       getEnvAsDuration("RETRY_DELAY", 2*time.Second),
			},
			RequestsPerSecond: getEnvAsFloat64("LLM_REQUESTS_PER_SECOND", 0),
			PriceThreshold:    getEnvAsFloat64("PRICE_THRESHOLD", llm.DefaultPriceThreshold),
		},
		Batch: BatchConfig{
			Workers: getEnvAsInt("MAX_WORKERS", 4),
		},
		Runs: RunsConfig{
			DBPath: getEnv("RUNS_DB_PATH", "runs.db"),
		},
	}
}

// ValidateLLM checks the settings the LLM pass cannot run without.
func (c *Config) ValidateLLM() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "DEEPSEEK_API_KEY is required", ErrInvalidInput)
	}
	if c.Batch.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "MAX_WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
