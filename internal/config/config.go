package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/MimeLyc/srt-batch-translator/internal/llm"
)

// Config holds all application configuration
// Supports environment variables with sensible defaults; CLI flags
// override via Options.
//
// Environment Variables:
// - LLM_API_KEY: API key for the LLM provider (optional, local Ollama needs none)
// - LLM_API_URL: API endpoint URL (default: http://localhost:11434/v1)
// - LLM_MODEL: Model name to use (default: llama3)
// - LLM_MAX_TOKENS: Maximum tokens for responses (default: 8000)
// - LLM_TEMPERATURE: Temperature for responses (default: 0.3)
// - LLM_TIMEOUT: Request timeout in seconds (default: 120)
// - BATCH_SIZE: Subtitle lines per translation request (default: 20)
// - MAX_RETRIES: Attempts per batch before splitting (default: 2)
// - LOG_LEVEL: Diagnostic verbosity (default: info)
type Config struct {
	LLM       llm.Config `json:"llm"`
	Translate Translate  `json:"translate"`
	LogLevel  string     `json:"log_level"`
}

// Translate holds the translation run configuration
type Translate struct {
	TargetLanguage string `json:"target_language"`
	BatchSize      int    `json:"batch_size"`
	MaxRetries     int    `json:"max_retries"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// WithTargetLanguage sets the target language (required, free-form)
func WithTargetLanguage(lang string) Option {
	return func(c *Config) {
		c.Translate.TargetLanguage = lang
	}
}

// WithModel overrides the model identifier
func WithModel(model string) Option {
	return func(c *Config) {
		if model != "" {
			c.LLM.Model = model
		}
	}
}

// WithBatchSize overrides the batch size
func WithBatchSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.Translate.BatchSize = size
		}
	}
}

// WithMaxRetries overrides the retry budget
func WithMaxRetries(retries int) Option {
	return func(c *Config) {
		if retries > 0 {
			c.Translate.MaxRetries = retries
		}
	}
}

// NewFromEnv creates a Config from environment variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		LLM: llm.Config{
			APIKey:      getEnvString("LLM_API_KEY", ""),
			APIURL:      getEnvString("LLM_API_URL", "http://localhost:11434/v1"),
			Model:       getEnvString("LLM_MODEL", "llama3"),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 8000),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.3),
			Timeout:     getEnvInt("LLM_TIMEOUT", 120),
		},
		Translate: Translate{
			BatchSize:  getEnvInt("BATCH_SIZE", 20),
			MaxRetries: getEnvInt("MAX_RETRIES", 2),
		},
		LogLevel: getEnvString("LOG_LEVEL", "info"),
	}

	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.Translate.TargetLanguage == "" {
		return fmt.Errorf("target language is required")
	}
	if c.Translate.BatchSize < 1 {
		return fmt.Errorf("batch size must be a positive integer")
	}
	if c.Translate.MaxRetries < 1 {
		return fmt.Errorf("max retries must be a positive integer")
	}
	return c.LLM.Validate()
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment variables with default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
