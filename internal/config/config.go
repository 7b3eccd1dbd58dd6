package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	LogLevel string

	// Market data provider.
	MarketBaseURL string
	MarketTimeout time.Duration

	// Optional YAML catalog overrides; empty paths keep the built-ins.
	FundCatalogPath      string
	ChallengeCatalogPath string

	// When true, completing a challenge re-derives the level together
	// with the XP it awards.
	LevelSyncOnChallenge bool

	// Cron spec for the market snapshot log job; empty disables it.
	TrendsCron string

	// SMTP settings for the welcome email; an empty host disables sending.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	timeoutSec, err := strconv.Atoi(getEnv("MARKET_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid MARKET_TIMEOUT_SECONDS")
	}

	levelSync, err := strconv.ParseBool(getEnv("LEVEL_SYNC_ON_CHALLENGE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEVEL_SYNC_ON_CHALLENGE")
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		MarketBaseURL:        getEnv("MARKET_BASE_URL", "https://query1.finance.yahoo.com"),
		MarketTimeout:        time.Duration(timeoutSec) * time.Second,
		FundCatalogPath:      getEnv("FUND_CATALOG", ""),
		ChallengeCatalogPath: getEnv("CHALLENGE_CATALOG", ""),
		LevelSyncOnChallenge: levelSync,
		TrendsCron:           getEnv("TRENDS_CRON", "0 0 18 * * 1-5"),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             getEnv("SMTP_PORT", "587"),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		SenderEmail:          getEnv("SENDER_EMAIL", "noreply@finlearn.app"),
	}

	if cfg.MarketBaseURL == "" {
		return nil, fmt.Errorf("MARKET_BASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
