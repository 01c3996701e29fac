package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"personal-ledger/domain"
	"personal-ledger/shared"
)

type Config struct {
	Branch    string
	Limits    domain.WithdrawalLimits
	Location  *time.Location
	LogOutput string
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("Warning: no .env file loaded (%v), relying on environment variables", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	limit, err := decimal.NewFromString(getEnv("LEDGER_WITHDRAWAL_LIMIT", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_WITHDRAWAL_LIMIT: %w", err)
	}
	daily, err := strconv.Atoi(getEnv("LEDGER_DAILY_WITHDRAWALS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_DAILY_WITHDRAWALS: %w", err)
	}
	loc, err := time.LoadLocation(getEnv("LEDGER_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE: %w", err)
	}

	cfg := &Config{
		Branch:    getEnv("LEDGER_BRANCH", shared.DefaultBranch),
		Limits:    domain.WithdrawalLimits{PerOperation: limit, Daily: daily},
		Location:  loc,
		LogOutput: getEnv("LEDGER_LOG_OUTPUT", "stdout"),
	}
	if !cfg.Limits.PerOperation.IsPositive() {
		return nil, fmt.Errorf("LEDGER_WITHDRAWAL_LIMIT must be positive, got %s", limit.String())
	}
	if cfg.Limits.Daily < 0 {
		return nil, fmt.Errorf("LEDGER_DAILY_WITHDRAWALS cannot be negative, got %d", daily)
	}
	if _, err := cfg.LogWriter(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogWriter maps LogOutput to a destination for the standard logger.
func (c *Config) LogWriter() (io.Writer, error) {
	switch c.LogOutput {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	case "discard":
		return io.Discard, nil
	default:
		return nil, fmt.Errorf("invalid LEDGER_LOG_OUTPUT %q: use stdout, stderr or discard", c.LogOutput)
	}
}

// Clock returns the clock whose calendar day drives the daily withdrawal limit.
func (c *Config) Clock() domain.Clock {
	return domain.SystemClock{Location: c.Location}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
