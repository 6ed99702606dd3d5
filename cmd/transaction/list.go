package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit   int
	Account string
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(a *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recent transactions",
		Long:    `List the most recent transactions, newest first. Use --account to see one account's history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{app: a, flags: flags}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListRows, "maximum number of transactions")
	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "only transactions touching this account")

	return cmd
}

func (r *ListCommandRunner) Run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var txs []*model.Transaction
	var err error
	if r.flags.Account != "" {
		txs, err = r.app.Service.Transaction.GetTransactionHistory(ctx, r.flags.Account, r.flags.Limit)
	} else {
		txs, err = r.app.Service.Transaction.GetRecentTransactions(ctx, r.flags.Limit)
	}
	if err != nil {
		return err
	}

	return views.NewTransactionListView(r.app.Config.Transfer.AmountScale, r.flags.Account).Render(txs, r.flags.Limit)
}
