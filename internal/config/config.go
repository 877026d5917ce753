// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, dialogue behavior, session lifetimes, and optional features.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Background task intervals not worth an env var each.
const (
	// RateLimiterCleanupInterval controls how often idle per-user buckets are dropped.
	RateLimiterCleanupInterval = 5 * time.Minute

	// MetricsUpdateInterval controls how often gauge metrics are refreshed.
	MetricsUpdateInterval = 5 * time.Minute

	// HTTPReadTimeout / HTTPWriteTimeout / HTTPIdleTimeout bound the HTTP server.
	HTTPReadTimeout  = 10 * time.Second
	HTTPWriteTimeout = 30 * time.Second
	HTTPIdleTimeout  = 120 * time.Second
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir string // Data directory for SQLite database

	// Session Configuration
	SessionTTL             time.Duration // Idle lifetime of a dialogue context
	SessionCleanupInterval time.Duration // Janitor sweep interval

	// Dialogue Configuration
	ConfidenceThreshold  float64 // Below this, a reply asks for clarification
	ClarifyLowConfidence bool    // Gate clarification on low confidence, not only missing slots
	FollowUpMaxWords     int     // Short replies up to this word count are follow-up candidates
	MaxFollowUpQuestions int     // Follow-up questions appended per reply
	TemplateSeed         int64   // Fixed RNG seed for template selection (0 = time-based)
	ConversationLog      bool    // Persist chat turns to SQLite

	// News retrieval
	NewsLimit int // Announcements attached per reply

	// Rate Limits (Token Bucket Algorithm)
	UserRateBurst  float64 // Maximum burst tokens per session
	UserRateRefill float64 // Tokens refilled per second
	LLMRateBurst   float64 // Maximum burst tokens for LLM entity recognition
	LLMRateRefill  float64 // LLM tokens refilled per second

	// LLM entity recognition (optional)
	GeminiAPIKey string
	GroqAPIKey   string
	GeminiModel  string // Empty = default from ner package
	GroqModel    string // Empty = default from ner package

	// R2 backup (optional)
	R2Enabled        bool
	R2Endpoint       string
	R2AccessKeyID    string
	R2SecretKey      string
	R2BucketName     string
	R2BackupKey      string
	R2BackupInterval time.Duration

	// Sentry (optional)
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Better Stack (optional)
	BetterStackToken    string
	BetterStackEndpoint string
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		// Server Configuration
		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, 30*time.Second),

		// Data Configuration
		DataDir: getEnv(EnvDataDir, getDefaultDataDir()),

		// Session Configuration
		SessionTTL:             getDurationEnv(EnvSessionTTL, 30*time.Minute),
		SessionCleanupInterval: getDurationEnv(EnvSessionCleanupInterval, 5*time.Minute),

		// Dialogue Configuration
		ConfidenceThreshold:  getFloatEnv(EnvConfidenceThreshold, 0.3),
		ClarifyLowConfidence: getBoolEnv(EnvClarifyLowConfidence, true),
		FollowUpMaxWords:     getIntEnv(EnvFollowUpMaxWords, 5),
		MaxFollowUpQuestions: getIntEnv(EnvMaxFollowUpQuestions, 2),
		TemplateSeed:         int64(getIntEnv(EnvTemplateSeed, 0)),
		ConversationLog:      getBoolEnv(EnvConversationLogEnable, true),

		// News retrieval
		NewsLimit: getIntEnv(EnvNewsLimit, 3),

		// Rate Limits
		UserRateBurst:  getFloatEnv(EnvUserRateBurst, 15.0),
		UserRateRefill: getFloatEnv(EnvUserRateRefill, 0.5), // 1 per 2s
		LLMRateBurst:   getFloatEnv(EnvLLMRateBurst, 10.0),
		LLMRateRefill:  getFloatEnv(EnvLLMRateRefill, 0.1), // 1 per 10s

		// LLM entity recognition
		GeminiAPIKey: getEnv(EnvGeminiAPIKey, ""),
		GroqAPIKey:   getEnv(EnvGroqAPIKey, ""),
		GeminiModel:  getEnv(EnvGeminiModel, ""),
		GroqModel:    getEnv(EnvGroqModel, ""),

		// R2 backup
		R2Enabled:        getBoolEnv(EnvR2Enabled, false),
		R2Endpoint:       getEnv(EnvR2Endpoint, ""),
		R2AccessKeyID:    getEnv(EnvR2AccessKeyID, ""),
		R2SecretKey:      getEnv(EnvR2SecretKey, ""),
		R2BucketName:     getEnv(EnvR2BucketName, ""),
		R2BackupKey:      getEnv(EnvR2BackupKey, "backups/helpdesk.db.zst"),
		R2BackupInterval: getDurationEnv(EnvR2BackupInterval, 6*time.Hour),

		// Sentry
		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		// Better Stack
		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionTTL, c.SessionTTL))
	}
	if c.SessionCleanupInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvSessionCleanupInterval, c.SessionCleanupInterval))
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", EnvConfidenceThreshold, c.ConfidenceThreshold))
	}
	if c.FollowUpMaxWords <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvFollowUpMaxWords, c.FollowUpMaxWords))
	}
	if c.MaxFollowUpQuestions < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvMaxFollowUpQuestions, c.MaxFollowUpQuestions))
	}
	if c.NewsLimit < 0 {
		errs = append(errs, fmt.Errorf("%s cannot be negative, got %d", EnvNewsLimit, c.NewsLimit))
	}
	if c.UserRateBurst <= 0 || c.UserRateRefill <= 0 {
		errs = append(errs, errors.New("user rate limit burst and refill must be positive"))
	}
	if c.R2Enabled {
		if c.R2Endpoint == "" || c.R2AccessKeyID == "" || c.R2SecretKey == "" || c.R2BucketName == "" {
			errs = append(errs, errors.New("R2 backup enabled but endpoint, credentials, or bucket missing"))
		}
		if c.R2BackupInterval <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvR2BackupInterval, c.R2BackupInterval))
		}
	}
	if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
		errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", EnvSentrySampleRate, c.SentrySampleRate))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "helpdesk.db")
}

// HasLLMProvider returns true if at least one LLM provider is configured.
func (c *Config) HasLLMProvider() bool {
	return c.GeminiAPIKey != "" || c.GroqAPIKey != ""
}

// HasR2Backup returns true if R2 backup is enabled and fully configured.
func (c *Config) HasR2Backup() bool {
	return c.R2Enabled && c.R2Endpoint != "" && c.R2AccessKeyID != "" &&
		c.R2SecretKey != "" && c.R2BucketName != ""
}
