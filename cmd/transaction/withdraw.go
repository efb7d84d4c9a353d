package transaction

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/spf13/cobra"
)

type WithdrawRunner struct {
	svc *service.Service
}

func NewWithdrawRunner(svc *service.Service) *WithdrawRunner {
	return &WithdrawRunner{svc: svc}
}

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	var number int64

	cmd := &cobra.Command{
		Use:          "withdraw",
		Aliases:      []string{"withdrawal"},
		Short:        "Withdraw money from an account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewWithdrawRunner(svc).Run(number)
		},
	}

	cmd.Flags().Int64VarP(&number, "account", "a", 0, "Account number (prompted for when omitted)")

	return cmd
}

func (r *WithdrawRunner) Run(number int64) error {
	number, err := resolveAccount(r.svc, number, "Select account for withdrawal:")
	if err != nil {
		return err
	}

	ui.PrintL2Title("Withdrawal")
	_, err = r.svc.Transaction.Withdraw(number)
	return err
}
