package account

import (
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/spf13/cobra"
)

type DeleteRunner struct {
	svc *service.Service
}

func NewDeleteRunner(svc *service.Service) *DeleteRunner {
	return &DeleteRunner{svc: svc}
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	var number int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an account.",
		Long: `Delete an account after checking the last 4 characters of the holder's ID
and the account PIN. The record and its index entry are removed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteRunner(svc).Run(number)
		},
	}

	cmd.Flags().Int64VarP(&number, "account", "a", 0, "Account number (prompted for when omitted)")

	return cmd
}

// Run deletes number, or asks the operator to pick an account when number is zero.
func (r *DeleteRunner) Run(number int64) error {
	if number == 0 {
		selected, err := r.svc.Account.SelectAccount("Select account to delete:")
		if err != nil {
			return err
		}
		number = selected
	}

	ui.PrintL2Title("Delete Account %d", number)
	return r.svc.Account.DeleteAccount(number)
}
