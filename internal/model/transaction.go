package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
)

// Transaction records one completed transfer. Rejected transfers never produce one.
type Transaction struct {
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	Status        TransactionStatus
	CreatedAt     time.Time
}
