package cmd

import (
	"github.com/hance08/teller/internal/app"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
	app *app.App
}

func NewInfoCmd(svc *service.Service, current func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display session and storage information",
		Long:  `Display the current time, number of accounts, configuration and storage locations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
				app: current(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	if err := showSessionInfo(r.svc); err != nil {
		return err
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		StorageDriver:   cfg.Storage.Driver,
		StoragePath:     r.app.Paths.Storage,
		AuditPath:       r.app.Paths.Audit,
		DiagnosticsPath: r.app.Paths.Diagnostics,
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      r.app.Paths.AppDir,
	}

	return views.RenderSystemInfo(items)
}

func showSessionInfo(svc *service.Service) error {
	info, err := svc.Account.SessionInfo()
	if err != nil {
		return err
	}

	return views.RenderSessionInfo(views.SessionInfoItem{
		Time:          info.Time.Format(constants.AuditTimeFormat),
		TotalAccounts: info.TotalAccounts,
	})
}
