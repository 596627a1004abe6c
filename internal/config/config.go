package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	InterestRate       decimal.Decimal
	InterestPeriodDays int
	LogLevel           slog.Level
	LogFile            string
	MetricsAddr        string
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	rateStr := os.Getenv("BANK_INTEREST_RATE")
	if rateStr == "" {
		rateStr = "0.03"
	}
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || rate.IsNegative() {
		return nil, errors.New("invalid BANK_INTEREST_RATE value")
	}

	periodStr := os.Getenv("BANK_INTEREST_PERIOD_DAYS")
	if periodStr == "" {
		periodStr = "30"
	}
	period, err := strconv.Atoi(periodStr)
	if err != nil || period < 1 {
		return nil, errors.New("invalid BANK_INTEREST_PERIOD_DAYS value")
	}

	levelStr := os.Getenv("BANK_LOG_LEVEL")
	if levelStr == "" {
		levelStr = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(levelStr))); err != nil {
		return nil, errors.New("invalid BANK_LOG_LEVEL value")
	}

	return &Config{
		InterestRate:       rate,
		InterestPeriodDays: period,
		LogLevel:           level,
		LogFile:            os.Getenv("BANK_LOG_FILE"),
		MetricsAddr:        os.Getenv("BANK_METRICS_ADDR"),
	}, nil
}
