package transaction

import (
	"github.com/hance08/teller/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Deposit, withdraw and transfer money",
		Long:    "Move money into, out of and between accounts. Every operation asks for the account PIN.",
	}

	transactionCmd.AddCommand(NewDepositCmd(svc))
	transactionCmd.AddCommand(NewWithdrawCmd(svc))
	transactionCmd.AddCommand(NewTransferCmd(svc))

	return transactionCmd
}

// resolveAccount returns number when set, otherwise the operator's selection.
func resolveAccount(svc *service.Service, number int64, title string) (int64, error) {
	if number != 0 {
		return number, nil
	}
	return svc.Account.SelectAccount(title)
}
