package service

import (
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

// AccountView is the part of an account a transfer caller gets to see.
type AccountView struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// Receipt confirms a completed transfer to the sender. The receiving account
// is deliberately absent.
type Receipt struct {
	ID        string                  `json:"id"`
	From      AccountView             `json:"from"`
	Amount    decimal.Decimal         `json:"amount"`
	Status    model.TransactionStatus `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}

func newReceipt(tx *model.Transaction, sender *model.Account) *Receipt {
	return &Receipt{
		ID: tx.ID,
		From: AccountView{
			ID:      sender.ID,
			Balance: sender.Balance,
		},
		Amount:    tx.Amount,
		Status:    tx.Status,
		CreatedAt: tx.CreatedAt,
	}
}
