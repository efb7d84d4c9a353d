package cmd

import (
	"strings"

	"github.com/hance08/teller/cmd/account"
	"github.com/hance08/teller/cmd/transaction"
	"github.com/hance08/teller/internal/errhandler"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/hance08/teller/internal/ui/prompts"
	"github.com/pterm/pterm"
)

type menuAction int

const (
	actionExit menuAction = iota
	actionDeposit
	actionWithdraw
	actionTransfer
	actionCreate
	actionDelete
)

var menuKeywords = map[string]menuAction{
	"0": actionExit, "exit": actionExit, "quit": actionExit,
	"1": actionDeposit, "deposit": actionDeposit,
	"2": actionWithdraw, "withdraw": actionWithdraw, "withdrawal": actionWithdraw,
	"3": actionTransfer, "remittance": actionTransfer, "transfer": actionTransfer,
	"4": actionCreate, "create": actionCreate, "new": actionCreate,
	"5": actionDelete, "delete": actionDelete, "remove": actionDelete,
}

// parseMenuChoice accepts a menu number or a case-insensitive keyword.
func parseMenuChoice(input string) (menuAction, bool) {
	action, ok := menuKeywords[strings.ToLower(strings.TrimSpace(input))]
	return action, ok
}

type menuRunner struct {
	svc  *service.Service
	read func() (string, error)
}

func newMenuRunner(svc *service.Service) *menuRunner {
	return &menuRunner{
		svc: svc,
		read: func() (string, error) {
			return prompts.PromptInput("Select an option:", "", nil)
		},
	}
}

// Run shows the session banner and serves operations until the operator exits.
func (r *menuRunner) Run() error {
	if err := showSessionInfo(r.svc); err != nil {
		return err
	}

	for {
		printMenu()

		input, err := r.read()
		if err != nil {
			if errhandler.IsInterrupt(err) {
				r.exit()
				return nil
			}
			return err
		}

		action, ok := parseMenuChoice(input)
		if !ok {
			pterm.Warning.Println("Invalid option")
			continue
		}

		if action == actionExit {
			r.exit()
			return nil
		}

		errhandler.HandleError(r.dispatch(action))
		ui.Separator()
	}
}

func (r *menuRunner) dispatch(action menuAction) error {
	switch action {
	case actionDeposit:
		return transaction.NewDepositRunner(r.svc).Run(0)
	case actionWithdraw:
		return transaction.NewWithdrawRunner(r.svc).Run(0)
	case actionTransfer:
		return transaction.NewTransferRunner(r.svc).Run(0, 0)
	case actionCreate:
		return account.NewCreateRunner(r.svc).Interactive()
	case actionDelete:
		return account.NewDeleteRunner(r.svc).Run(0)
	}
	return nil
}

func (r *menuRunner) exit() {
	r.svc.Account.Exit()
	pterm.Info.Println("Thank you for using teller. Goodbye!")
}

func printMenu() {
	ui.PrintL1Title("Main Menu")
	pterm.Println("1. Deposit")
	pterm.Println("2. Withdrawal")
	pterm.Println("3. Remittance")
	pterm.Println("4. Create new account")
	pterm.Println("5. Delete account")
	pterm.Println("0. Exit")
}
