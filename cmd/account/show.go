package account

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app     *app.App
	history int
}

func NewShowCmd(a *app.App) *cobra.Command {
	runner := &ShowCommandRunner{app: a}

	cmd := &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show an account and its latest transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd, args[0])
		},
	}

	cmd.Flags().IntVarP(&runner.history, "history", "n", constants.DefaultListRows, "number of transactions to show (0 hides them)")

	return cmd
}

func (r *ShowCommandRunner) Run(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()
	scale := r.app.Config.Transfer.AmountScale

	acc, err := r.app.Service.Account.GetAccount(ctx, id)
	if err != nil {
		return err
	}
	if err := views.RenderAccount(acc, scale); err != nil {
		return err
	}

	if r.history <= 0 {
		return nil
	}
	txs, err := r.app.Service.Transaction.GetTransactionHistory(ctx, id, r.history)
	if err != nil {
		return err
	}
	return views.NewTransactionListView(scale, id).Render(txs, r.history)
}
