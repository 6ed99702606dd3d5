package account

import (
	"fmt"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui/prompts"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	ID      string
	Balance string
}

// AccountCreator manages the state and logic for creating an account
type AccountCreator struct {
	app   *app.App
	flags *createFlags
}

func NewCreateCmd(a *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create an account with an opening balance. This is the only way money
enters the ledger; afterwards it only moves between accounts.

Without flags you are asked for the id and opening balance.

Example: tally account create --id acc-1 --balance 100.00`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := &AccountCreator{app: a, flags: flags}
			if !cmd.Flags().Changed("id") && !cmd.Flags().Changed("balance") {
				if err := creator.InteractiveMode(); err != nil {
					return err
				}
			}
			return creator.Create(cmd)
		},
	}

	cmd.Flags().StringVar(&flags.ID, "id", "", "Account id (generated when empty)")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "0", "Opening balance, e.g. 100.00")

	return cmd
}

func (ac *AccountCreator) InteractiveMode() error {
	scale := ac.app.Config.Transfer.AmountScale

	id, err := prompts.PromptAccountID(validation.ValidateOptionalAccountID)
	if err != nil {
		return err
	}
	balance, err := prompts.PromptOpeningBalance(validation.ValidateInitialBalance(scale))
	if err != nil {
		return err
	}

	ac.flags.ID = id
	ac.flags.Balance = balance
	return nil
}

func (ac *AccountCreator) Create(cmd *cobra.Command) error {
	opening := decimal.Zero
	if ac.flags.Balance != "" {
		parsed, err := utils.ParseAmount(ac.flags.Balance)
		if err != nil {
			return fmt.Errorf("%w: %w", service.ErrInvalidAccount, err)
		}
		opening = parsed
	}

	acc, err := ac.app.Service.Account.CreateAccount(cmd.Context(), ac.flags.ID, opening)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Account '%s' created\n", acc.ID)
	return views.RenderAccount(acc, ac.app.Config.Transfer.AmountScale)
}
