package transaction

import (
	"github.com/hance08/tally/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(a *app.App) *cobra.Command {
	transactionCmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Inspect recorded transactions",
		Long:    "List completed transfers or show one of them. Recorded transactions never change.",
	}

	transactionCmd.AddCommand(NewListCmd(a))
	transactionCmd.AddCommand(NewShowCmd(a))

	return transactionCmd
}
