package account

import (
	"fmt"

	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listFlags struct {
	All bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts with their balances",
		Long: `List accounts in index order with their balances and status.
Only the first accounts up to the selection cap are shown unless --all is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&flags.All, "all", false, "List every indexed account")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	limit := r.svc.Ledger.Settings().SelectionCap
	if r.flags.All {
		limit = 0
	}

	accounts, err := r.svc.Account.ListAccounts(limit)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	if len(accounts) == 0 {
		pterm.Info.Println("No accounts found. Create one to start.")
		return nil
	}

	return views.RenderAccountList(accounts, r.svc.Ledger.Settings().Currency)
}
