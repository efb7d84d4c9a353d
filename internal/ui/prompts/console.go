package prompts

import (
	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
)

// Console is the terminal implementation of the ledger's operator console.
type Console struct {
	currency string
}

func NewConsole(currency string) *Console {
	return &Console{currency: currency}
}

func (c *Console) Input(title string, validate func(string) error) (string, error) {
	return PromptInput(title, "", validate)
}

func (c *Console) Secret(title string) (string, error) {
	return PromptSecret(title)
}

func (c *Console) Choose(title string, options []string) (string, error) {
	return PromptSelect(title, options, "")
}

func (c *Console) Confirm(title string, defaultValue bool) (bool, error) {
	return PromptConfirm(title, defaultValue)
}

func (c *Console) ShowAccount(acc *model.Account) {
	if err := views.RenderAccount(acc, c.currency); err != nil {
		pterm.Error.Println(err)
	}
}

func (c *Console) ShowAccountList(accounts []*model.Account) {
	if err := views.RenderAccountList(accounts, c.currency); err != nil {
		pterm.Error.Println(err)
	}
}

func (c *Console) Info(msg string) {
	pterm.Info.Println(msg)
}

func (c *Console) Warning(msg string) {
	pterm.Warning.Println(msg)
}

func (c *Console) Success(msg string) {
	pterm.Success.Println(msg)
}
