package account

import (
	"fmt"
	"strings"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/ui"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name     string
	IDNumber string
	Type     string
	PIN      string
}

// CreateRunner opens an account either from flags or through prompts.
type CreateRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateRunner(svc *service.Service) *CreateRunner {
	return &CreateRunner{svc: svc, flags: &createFlags{}}
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	runner := NewCreateRunner(svc)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new account.",
		Long: `Open a new Savings or Current account with a zero balance.
Without flags every field is prompted for.

Example: teller account create -n "Ali bin Abu" --id 900101-14-5678 -t Savings --pin 1234`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasFlags := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("id") ||
				cmd.Flags().Changed("type") ||
				cmd.Flags().Changed("pin")

			if hasFlags {
				return runner.FlagsMode()
			}
			return runner.Interactive()
		},
	}

	cmd.Flags().StringVarP(&runner.flags.Name, "name", "n", "", "Account holder name")
	cmd.Flags().StringVar(&runner.flags.IDNumber, "id", "", "Identification number")
	cmd.Flags().StringVarP(&runner.flags.Type, "type", "t", "", "Account type: Savings or Current")
	cmd.Flags().StringVar(&runner.flags.PIN, "pin", "", "4-digit PIN")

	return cmd
}

// FlagsMode opens the account from flags without prompting.
func (r *CreateRunner) FlagsMode() error {
	_, err := r.svc.Account.OpenAccount(service.NewAccount{
		Name:     r.flags.Name,
		IDNumber: r.flags.IDNumber,
		Type:     normalizeType(r.flags.Type),
		PIN:      r.flags.PIN,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *CreateRunner) Interactive() error {
	ui.PrintL2Title("Create New Account")

	_, err := r.svc.Account.CreateAccount()
	return err
}

// normalizeType accepts "savings", "CURRENT" and similar spellings.
func normalizeType(s string) model.Type {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, string(model.TypeSavings)):
		return model.TypeSavings
	case strings.EqualFold(s, string(model.TypeCurrent)):
		return model.TypeCurrent
	}
	return model.Type(s)
}
