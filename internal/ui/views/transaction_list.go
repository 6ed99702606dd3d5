package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/ui"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	scale int32
	// account, when set, colors each row by direction relative to it.
	account string
}

func NewTransactionListView(scale int32, account string) *TransactionListView {
	return &TransactionListView{scale: scale, account: account}
}

func (v *TransactionListView) Render(txs []*model.Transaction, limit int) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	if v.account != "" {
		pterm.DefaultSection.Printf("Transactions of %s (limit: %d)", v.account, limit)
	} else {
		pterm.DefaultSection.Printf("Showing recent transactions (limit: %d)", limit)
	}

	tableData := pterm.TableData{
		{"ID", "Date", "From", "To", "Amount", "Status"},
	}

	for _, tx := range txs {
		amount := utils.FormatAmount(tx.Amount, v.scale)
		if v.account != "" {
			outgoing := tx.FromAccountID == v.account
			if outgoing {
				amount = "-" + amount
			}
			amount = ui.ColorDirection(outgoing, amount)
		}

		tableData = append(tableData, []string{
			shortID(tx.ID),
			formatTime(tx.CreatedAt),
			tx.FromAccountID,
			tx.ToAccountID,
			amount,
			string(tx.Status),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}

func RenderTransaction(tx *model.Transaction, scale int32) error {
	ui.PrintL1Title("Transaction %s", tx.ID)

	tableData := pterm.TableData{
		{"From", tx.FromAccountID},
		{"To", tx.ToAccountID},
		{"Amount", utils.FormatAmount(tx.Amount, scale)},
		{"Status", string(tx.Status)},
		{"Date", formatTime(tx.CreatedAt)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
