package transaction

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/spf13/cobra"
)

type DepositRunner struct {
	svc *service.Service
}

func NewDepositRunner(svc *service.Service) *DepositRunner {
	return &DepositRunner{svc: svc}
}

func NewDepositCmd(svc *service.Service) *cobra.Command {
	var number int64

	cmd := &cobra.Command{
		Use:          "deposit",
		Short:        "Deposit money into an account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDepositRunner(svc).Run(number)
		},
	}

	cmd.Flags().Int64VarP(&number, "account", "a", 0, "Account number (prompted for when omitted)")

	return cmd
}

func (r *DepositRunner) Run(number int64) error {
	number, err := resolveAccount(r.svc, number, "Select account for deposit:")
	if err != nil {
		return err
	}

	ui.PrintL2Title("Deposit")
	_, err = r.svc.Transaction.Deposit(number)
	return err
}
