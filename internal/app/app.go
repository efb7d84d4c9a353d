package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/teller/internal/audit"
	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/logger"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
	"github.com/hance08/teller/internal/ui/prompts"
	"go.uber.org/zap"
)

// Paths records where this session reads and writes.
type Paths struct {
	AppDir      string
	Storage     string
	Audit       string
	Diagnostics string
}

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *zap.Logger
	Paths   Paths
}

// NewApp builds the ledger context from config: storage, audit trail, diagnostics
// and the terminal console. The returned cleanup closes everything it opened.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	return newApp(cfg, migrationFS, prompts.NewConsole(cfg.Defaults.Currency))
}

func newApp(cfg *config.Config, migrationFS fs.FS, console service.Console) (*App, func(), error) {
	appDir, err := GetAppDataDir()
	if err != nil {
		return nil, nil, err
	}

	settings, err := service.NewSettings(cfg)
	if err != nil {
		return nil, nil, err
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = filepath.Join(appDir, "teller-diagnostics.log")
	}
	log, closeLog, err := logger.New(logPath, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize diagnostics log: %w", err)
	}

	paths := Paths{AppDir: appDir, Diagnostics: logPath}

	var (
		repo store.Repository
		sink audit.Sink
	)

	switch cfg.Storage.Driver {
	case constants.DriverSQLite:
		dbPath := cfg.Storage.Path
		if dbPath == "" {
			dbPath = filepath.Join(appDir, "teller.db")
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("failed to create storage directory: %w", err)
		}

		sqlite, err := store.NewSQLiteStore(dbPath, migrationFS)
		if err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo, sink = sqlite, sqlite
		paths.Storage = dbPath
		paths.Audit = dbPath + " (audit_log table)"

	default:
		dir := cfg.Storage.Path
		if dir == "" {
			dir = filepath.Join(appDir, "database")
		}

		files, err := store.NewFileStore(dir, log)
		if err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		auditPath := filepath.Join(dir, constants.AuditFileName)
		repo, sink = files, audit.NewFileSink(auditPath)
		paths.Storage = dir
		paths.Audit = auditPath
	}

	log.Info("session started",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("storage", paths.Storage))

	ledger := service.NewLedger(repo, audit.NewTrail(sink), console, log, settings)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			log.Error("failed to close storage", zap.Error(err))
		}
		closeLog()
	}

	return &App{
		Service: service.NewService(ledger),
		Store:   repo,
		Logger:  log,
		Paths:   paths,
	}, cleanup, nil
}

// GetAppDataDir returns the per-user directory holding config, storage and logs.
func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}
