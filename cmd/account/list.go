package account

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	app *app.App
}

func NewListCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{app: a}
			return runner.Run(cmd)
		},
	}
}

func (r *ListCommandRunner) Run(cmd *cobra.Command) error {
	accounts, err := r.app.Service.Account.GetAllAccounts(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return views.NewAccountListView(r.app.Config.Transfer.AmountScale).Render(accounts)
}
