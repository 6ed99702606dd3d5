package cmd

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transferRunner struct {
	app *app.App
	yes bool
}

func NewTransferCmd(a *app.App) *cobra.Command {
	runner := &transferRunner{app: a}

	cmd := &cobra.Command{
		Use:   "transfer [from] [to] [amount]",
		Short: "Move money from one account to another",
		Long: `Transfer an amount from one account to another.

With all three arguments the transfer runs straight away. Leave any of them
out and you are asked for the rest, then asked to confirm.

Example: tally transfer acc-1 acc-2 30.00`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (r *transferRunner) Run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	scale := r.app.Config.Transfer.AmountScale

	input := prompts.TransferInput{}
	if len(args) > 0 {
		input.From = args[0]
	}
	if len(args) > 1 {
		input.To = args[1]
	}
	if len(args) > 2 {
		input.Amount = args[2]
	}

	interactive := len(args) < 3
	if interactive {
		accounts, err := r.app.Service.Account.GetAllAccounts(ctx)
		if err != nil {
			return err
		}
		input, err = prompts.PromptTransfer(input, accounts, scale)
		if err != nil {
			return err
		}
	}

	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidTransfer, err)
	}

	if interactive && !r.yes {
		if err := views.RenderTransferPreview(input.From, input.To, utils.FormatAmount(amount, scale)); err != nil {
			return err
		}
		ok, err := prompts.PromptConfirm("Send this transfer?", true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Warning.Println("Transfer discarded")
			return nil
		}
	}

	receipt, err := r.app.Service.Transfer.Transfer(ctx, input.From, input.To, amount)
	if err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}

	return views.RenderReceipt(receipt, scale)
}
