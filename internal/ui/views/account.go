package views

import (
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
	"github.com/pterm/pterm"
)

// RenderAccount prints one account as a two-column table.
func RenderAccount(acc *model.Account, currency string) error {
	tableData := pterm.TableData{
		{pterm.Blue("Account No"), fmt.Sprintf("%d", acc.Number)},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("PIN"), acc.PIN},
		{pterm.Blue("Balance"), utils.FormatMoney(currency, acc.Balance)},
		{pterm.Blue("Type"), string(acc.Type)},
		{pterm.Blue("Status"), colorStatus(acc.Status)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderAccountList prints the numbered selection table.
func RenderAccountList(accounts []*model.Account, currency string) error {
	headers := []string{"No", "Account No", "Name", "Balance", "Type", "Status"}
	tableData := pterm.TableData{headers}

	for i, acc := range accounts {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", acc.Number),
			acc.Name,
			utils.FormatMoney(currency, acc.Balance),
			string(acc.Type),
			colorStatus(acc.Status),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}

func colorStatus(s model.Status) string {
	if s == model.StatusActive {
		return pterm.Green(s.String())
	}
	return pterm.Red(s.String())
}
