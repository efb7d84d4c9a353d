package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SessionInfoItem struct {
	Time          string
	TotalAccounts int
}

type SystemInfoItem struct {
	ConfigPath      string
	StorageDriver   string
	StoragePath     string
	AuditPath       string
	DiagnosticsPath string
	DefaultCurrency string
	AppDataDir      string
}

// RenderSessionInfo prints the banner shown when a session starts.
func RenderSessionInfo(data SessionInfoItem) error {
	pterm.DefaultSection.Println("Session Information")

	tableData := pterm.TableData{
		{"Current Time", data.Time},
		{"Total Accounts", fmt.Sprintf("%d", data.TotalAccounts)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	if data.TotalAccounts == 0 {
		pterm.Info.Println("No accounts found. Create one to start.")
	}

	return nil
}

func RenderSystemInfo(data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Driver", data.StorageDriver},
		{"Storage Path", data.StoragePath},
		{"Audit Log", data.AuditPath},
		{"Diagnostics Log", data.DiagnosticsPath},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
