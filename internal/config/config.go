package config

import (
	"fmt"

	"github.com/hance08/teller/internal/constants"
)

type Config struct {
	Storage    StorageConfig  `mapstructure:"storage"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Limits     LimitsConfig   `mapstructure:"limits"`
	Fees       FeesConfig     `mapstructure:"fees"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LimitsConfig struct {
	MaxDeposit   int64 `mapstructure:"max_deposit"`
	PINAttempts  int   `mapstructure:"pin_attempts"`
	SelectionCap int   `mapstructure:"selection_cap"`
}

// FeesConfig holds remittance fee rates as decimal strings ("0.02" is 2%).
type FeesConfig struct {
	SavingsToCurrent string `mapstructure:"savings_to_current"`
	CurrentToSavings string `mapstructure:"current_to_savings"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		Storage:  StorageConfig{Driver: constants.DriverFile, Path: ""},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
		Limits: LimitsConfig{
			MaxDeposit:   constants.DefaultMaxDeposit,
			PINAttempts:  constants.DefaultPINAttempts,
			SelectionCap: constants.DefaultSelectionCap,
		},
		Fees: FeesConfig{
			SavingsToCurrent: constants.DefaultSavingsToCurr,
			CurrentToSavings: constants.DefaultCurrToSavings,
		},
		Log: LogConfig{Level: "info", Path: ""},
	}
}

// Validate rejects values the ledger cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case constants.DriverFile, constants.DriverSQLite:
	default:
		return fmt.Errorf("storage.driver: unknown driver '%s' (must be %s or %s)",
			c.Storage.Driver, constants.DriverFile, constants.DriverSQLite)
	}

	if c.Limits.MaxDeposit <= 0 {
		return fmt.Errorf("limits.max_deposit must be positive, got %d", c.Limits.MaxDeposit)
	}
	if maxUnits := int64(constants.MaxAmountCents / constants.CentsPerUnit); c.Limits.MaxDeposit > maxUnits {
		return fmt.Errorf("limits.max_deposit must be at most %d, got %d", maxUnits, c.Limits.MaxDeposit)
	}
	if c.Limits.PINAttempts <= 0 {
		return fmt.Errorf("limits.pin_attempts must be positive, got %d", c.Limits.PINAttempts)
	}
	if c.Limits.SelectionCap <= 0 {
		return fmt.Errorf("limits.selection_cap must be positive, got %d", c.Limits.SelectionCap)
	}

	if _, err := ParseRate(c.Fees.SavingsToCurrent); err != nil {
		return fmt.Errorf("fees.savings_to_current: %w", err)
	}
	if _, err := ParseRate(c.Fees.CurrentToSavings); err != nil {
		return fmt.Errorf("fees.current_to_savings: %w", err)
	}

	return nil
}
