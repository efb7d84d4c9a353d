package transaction

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/spf13/cobra"
)

type TransferRunner struct {
	svc *service.Service
}

func NewTransferRunner(svc *service.Service) *TransferRunner {
	return &TransferRunner{svc: svc}
}

func NewTransferCmd(svc *service.Service) *cobra.Command {
	var from, to int64

	cmd := &cobra.Command{
		Use:     "transfer",
		Aliases: []string{"remittance"},
		Short:   "Transfer money between accounts",
		Long: `Transfer money from a sender to a receiver account. Only the sender's PIN is asked.
Savings to Current costs the sender a 2% fee, Current to Savings 3%; same-type transfers are free.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewTransferRunner(svc).Run(from, to)
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "Sender account number (prompted for when omitted)")
	cmd.Flags().Int64Var(&to, "to", 0, "Receiver account number (prompted for when omitted)")

	return cmd
}

func (r *TransferRunner) Run(from, to int64) error {
	ui.PrintL2Title("Select Sender Account")
	from, err := resolveAccount(r.svc, from, "Sender account:")
	if err != nil {
		return err
	}

	ui.PrintL2Title("Select Receiver Account")
	to, err = resolveAccount(r.svc, to, "Receiver account:")
	if err != nil {
		return err
	}

	ui.PrintL2Title("Remittance")
	_, err = r.svc.Transaction.Transfer(from, to)
	return err
}
