package views

import (
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

func RenderReceipt(r *service.Receipt, scale int32) error {
	pterm.Success.Printf("Transferred %s from %s\n", utils.FormatAmount(r.Amount, scale), r.From.ID)

	ui.PrintL2Title("Receipt")
	tableData := pterm.TableData{
		{"Transaction", r.ID},
		{"Status", string(r.Status)},
		{"Date", formatTime(r.CreatedAt)},
		{"Balance of " + r.From.ID, ui.ColorBalance(r.From.Balance, utils.FormatAmount(r.From.Balance, scale))},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}

// RenderTransferPreview is shown before asking for confirmation.
func RenderTransferPreview(from, to, amount string) error {
	tableData := pterm.TableData{
		{"From", from},
		{"To", to},
		{"Amount", pterm.Bold.Sprint(amount)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
