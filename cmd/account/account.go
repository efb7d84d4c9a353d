package account

import (
	"github.com/hance08/teller/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, delete and list bank accounts.",
		Long:  `Create, delete and list bank accounts.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewDeleteCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))

	return accountCmd
}
