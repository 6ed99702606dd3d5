package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
)

type TransactionService struct {
	repo   store.Repository
	config *config.Config
}

func NewTransactionService(repo store.Repository, cfg *config.Config) *TransactionService {
	return &TransactionService{repo: repo, config: cfg}
}

func (ts *TransactionService) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	tx, err := ts.repo.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrTransactionNotFound, id)
		}
		return nil, classify(err)
	}
	return tx, nil
}

// GetRecentTransactions returns the newest transactions first.
func (ts *TransactionService) GetRecentTransactions(ctx context.Context, limit int) ([]*model.Transaction, error) {
	txs, err := ts.repo.GetAllTransactions(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, classify(err)
	}
	return txs, nil
}

// GetTransactionHistory lists transactions where accountID is either side,
// newest first.
func (ts *TransactionService) GetTransactionHistory(ctx context.Context, accountID string, limit int) ([]*model.Transaction, error) {
	if _, err := loadAccount(ctx, ts.repo, accountID); err != nil {
		return nil, classify(err)
	}

	txs, err := ts.repo.GetTransactionsByAccount(ctx, accountID, normalizeLimit(limit))
	if err != nil {
		return nil, classify(err)
	}
	return txs, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return store.DefaultListLimit
	}
	return limit
}
