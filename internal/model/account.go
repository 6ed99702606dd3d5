package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a balance-holding entity. Balance is only mutated by the transfer engine.
type Account struct {
	ID        string
	Balance   decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
