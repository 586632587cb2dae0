// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"bankcli/internal/export"
	"bankcli/internal/platform/logger"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed value breaks a rule.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds every setting of the terminal bank.
type Config struct {
	Agency           string          `env:"BANK_AGENCY" envDefault:"0001"`
	WithdrawalLimit  decimal.Decimal `env:"BANK_WITHDRAWAL_LIMIT" envDefault:"500"`
	DailyWithdrawals int             `env:"BANK_DAILY_WITHDRAWALS" envDefault:"3"`
	PromptAttempts   int             `env:"BANK_PROMPT_ATTEMPTS" envDefault:"3"`
	StrictCPFFormat  bool            `env:"BANK_STRICT_CPF_FORMAT" envDefault:"false"`
	ExportFormat     string          `env:"BANK_EXPORT_FORMAT" envDefault:"json"`
	LogLevel         string          `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat        string          `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files (or ./.env when none are given) and then
// parses the environment. A missing default .env is not an error; a missing
// explicit file is. Variables already set in the environment win over files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the rules env tags cannot express.
func (c Config) Validate() error {
	switch {
	case c.Agency == "":
		return fmt.Errorf("%w: BANK_AGENCY must not be empty", ErrInvalidConfig)
	case !c.WithdrawalLimit.IsPositive():
		return fmt.Errorf("%w: BANK_WITHDRAWAL_LIMIT must be > 0, got %s", ErrInvalidConfig, c.WithdrawalLimit)
	case c.DailyWithdrawals < 1:
		return fmt.Errorf("%w: BANK_DAILY_WITHDRAWALS must be >= 1, got %d", ErrInvalidConfig, c.DailyWithdrawals)
	case c.PromptAttempts < 1:
		return fmt.Errorf("%w: BANK_PROMPT_ATTEMPTS must be >= 1, got %d", ErrInvalidConfig, c.PromptAttempts)
	}
	if _, err := c.Export(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if _, err := c.Format(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Export returns the parsed export format.
func (c Config) Export() (export.Format, error) { return export.ParseFormat(c.ExportFormat) }

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) { return logger.ParseLevel(c.LogLevel) }

// Format returns the parsed log format.
func (c Config) Format() (logger.Format, error) { return logger.ParseFormat(c.LogFormat) }
