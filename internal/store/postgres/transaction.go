package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

func (s *Store) AppendTransaction(ctx context.Context, tx *model.Transaction) error {
	if tx.Status == "" {
		tx.Status = model.StatusCompleted
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(ctx, `
        INSERT INTO transactions (id, from_account_id, to_account_id, amount, status, created_at)
        VALUES ($1, $2, $3, $4::numeric, $5, $6)
    `, tx.ID, tx.FromAccountID, tx.ToAccountID, tx.Amount.String(), string(tx.Status), tx.CreatedAt)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("failed to insert transaction '%s': %w", tx.ID, store.ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert transaction : %w", err)
	}

	return nil
}

func (s *Store) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, from_account_id, to_account_id, amount::text, status, created_at
        FROM transactions
        WHERE id = $1
    `, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction '%s': %w", id, store.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, from_account_id, to_account_id, amount::text, status, created_at
        FROM transactions
        WHERE from_account_id = $1 OR to_account_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return collectTransactions(rows)
}

func (s *Store) GetAllTransactions(ctx context.Context, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = store.DefaultListLimit
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, from_account_id, to_account_id, amount::text, status, created_at
        FROM transactions
        ORDER BY created_at DESC, id DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]*model.Transaction, error) {
	defer rows.Close()

	var txs []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var amount, status string

	if err := row.Scan(&tx.ID, &tx.FromAccountID, &tx.ToAccountID, &amount, &status, &tx.CreatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	tx.Amount = parsed
	tx.Status = model.TransactionStatus(status)
	return tx, nil
}
