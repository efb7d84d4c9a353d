package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/transaction"
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/service"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	// Commands hold this value; it is filled in once config is loaded.
	svc := &service.Service{}
	var (
		application *app.App
		cleanup     = func() {}
	)

	rootCmd := &cobra.Command{
		Use:   "teller",
		Short: "teller is a terminal bank-account ledger",
		Long: `teller is a terminal bank-account ledger for a single operator.
Run without a subcommand to open the interactive menu.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}

			a, c, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			application, cleanup = a, c
			*svc = *a.Service

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newMenuRunner(svc).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(account.NewAccountCmd(svc))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc, func() *app.App { return application }))

	err := rootCmd.Execute()
	cleanup()

	if err != nil {
		if errhandler.IsInterrupt(err) {
			pterm.Warning.Println("Operation Cancelled")
			os.Exit(0)
		}
		pterm.Error.Println(errhandler.Capitalize(err.Error()))
		os.Exit(1)
	}
}

func initConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.GetAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("TELLER")
	viper.SetEnvKeyReplacer(replacer())
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded

	return nil
}

// setDefaults registers every key so env overrides apply even without a config file.
func setDefaults() {
	def := config.NewDefault()

	viper.SetDefault("storage.driver", def.Storage.Driver)
	viper.SetDefault("storage.path", def.Storage.Path)
	viper.SetDefault("defaults.currency", def.Defaults.Currency)
	viper.SetDefault("limits.max_deposit", def.Limits.MaxDeposit)
	viper.SetDefault("limits.pin_attempts", def.Limits.PINAttempts)
	viper.SetDefault("limits.selection_cap", def.Limits.SelectionCap)
	viper.SetDefault("fees.savings_to_current", def.Fees.SavingsToCurrent)
	viper.SetDefault("fees.current_to_savings", def.Fees.CurrentToSavings)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.path", def.Log.Path)
}

func loadConfig() (*config.Config, error) {
	c := config.NewDefault()
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	path, err := expandPath(c.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("storage.path: %w", err)
	}
	c.Storage.Path = path

	if path, err = expandPath(c.Log.Path); err != nil {
		return nil, fmt.Errorf("log.path: %w", err)
	}
	c.Log.Path = path

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	c.ConfigPath = viper.ConfigFileUsed()

	return c, nil
}

// replacer maps nested keys to env names: limits.max_deposit -> TELLER_LIMITS_MAX_DEPOSIT.
func replacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
