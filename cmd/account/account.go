package account

import (
	"github.com/hance08/tally/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts and inspect their balances.",
		Long:  `Create accounts with an opening balance, list all accounts or show one of them.`,
	}

	accountCmd.AddCommand(NewCreateCmd(a))
	accountCmd.AddCommand(NewListCmd(a))
	accountCmd.AddCommand(NewShowCmd(a))

	return accountCmd
}
