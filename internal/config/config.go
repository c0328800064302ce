package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	Logger LoggerConfig
	Bank   BankConfig
}

// BankConfig holds the rules applied to newly opened accounts
type BankConfig struct {
	OverdraftLimit       decimal.Decimal
	BranchCode           string
	DailyWithdrawalLimit int
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

// Load loads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		Bank: BankConfig{
			BranchCode:           getEnv("BRANCH_CODE", "0001"),
			OverdraftLimit:       getEnvAsDecimal("OVERDRAFT_LIMIT", decimal.NewFromInt(500)),
			DailyWithdrawalLimit: getEnvAsInt("DAILY_WITHDRAWAL_LIMIT", 3),
		},
		Logger: LoggerConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Bank.BranchCode == "" {
		return fmt.Errorf("branch code cannot be empty")
	}

	if c.Bank.OverdraftLimit.IsNegative() {
		return fmt.Errorf("overdraft limit cannot be negative, got %s", c.Bank.OverdraftLimit)
	}
	if c.Bank.DailyWithdrawalLimit <= 0 {
		return fmt.Errorf("daily withdrawal limit must be positive, got %d", c.Bank.DailyWithdrawalLimit)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logger.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logger.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
