package store

import (
	"context"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, acc *model.Account) error
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	GetAllAccounts(ctx context.Context) ([]*model.Account, error)
	// UpdateBalance writes a new balance only if the stored version still equals
	// expectedVersion, and bumps the version.
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, expectedVersion int64) error
}

type TransactionRepository interface {
	AppendTransaction(ctx context.Context, tx *model.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*model.Transaction, error)
	GetAllTransactions(ctx context.Context, limit int) ([]*model.Transaction, error)
}

type Repository interface {
	AccountRepository
	TransactionRepository
}

// TxRunner runs fn inside a single database transaction. Returning an error
// from fn rolls back every write made through the Repository it was given.
type TxRunner interface {
	ExecTx(ctx context.Context, fn func(Repository) error) error
}

// Backend is a Repository with an explicit lifecycle.
type Backend interface {
	Repository
	TxRunner
	Close() error
}

const DefaultListLimit = 100
