package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountListView struct {
	scale int32
}

func NewAccountListView(scale int32) *AccountListView {
	return &AccountListView{scale: scale}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "Balance", "Version", "Updated"}}

	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
		balance := utils.FormatAmount(acc.Balance, v.scale)
		tableData = append(tableData, []string{
			acc.ID,
			ui.ColorBalance(acc.Balance, balance),
			pterm.Gray(formatVersion(acc.Version)),
			formatTime(acc.UpdatedAt),
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts holding %s\n", len(accounts), utils.FormatAmount(total, v.scale))

	return nil
}

// RenderAccount shows a single account.
func RenderAccount(acc *model.Account, scale int32) error {
	ui.PrintL1Title("Account %s", acc.ID)

	tableData := pterm.TableData{
		{"Balance", ui.ColorBalance(acc.Balance, utils.FormatAmount(acc.Balance, scale))},
		{"Version", formatVersion(acc.Version)},
		{"Created", formatTime(acc.CreatedAt)},
		{"Updated", formatTime(acc.UpdatedAt)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
