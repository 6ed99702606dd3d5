package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app *app.App
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{
				app: a,
			}
			return runner.Run(cmd, args)
		},
	}
}

func (r *ShowCommandRunner) Run(cmd *cobra.Command, args []string) error {
	tx, err := r.app.Service.Transaction.GetTransaction(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return views.RenderTransaction(tx, r.app.Config.Transfer.AmountScale)
}
