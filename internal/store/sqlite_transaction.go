package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

// AppendTransaction inserts a completed transfer record. The table rejects
// updates and deletes, so a record is final once its transaction commits.
func (s *Store) AppendTransaction(ctx context.Context, tx *model.Transaction) error {
	if tx.Status == "" {
		tx.Status = model.StatusCompleted
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO transactions (id, from_account_id, to_account_id, amount, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, tx.ID, tx.FromAccountID, tx.ToAccountID, tx.Amount, string(tx.Status), tx.CreatedAt.UnixMilli())
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
			return fmt.Errorf("failed to insert transaction '%s': %w", tx.ID, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to insert transaction : %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a single transfer record
func (s *Store) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, from_account_id, to_account_id, amount, status, created_at
        FROM transactions
        WHERE id = ?
    `, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	return tx, nil
}

// GetTransactionsByAccount retrieves transfers where the account is either side.
// Returns transactions ordered by creation time (newest first)
func (s *Store) GetTransactionsByAccount(ctx context.Context, accountID string, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, from_account_id, to_account_id, amount, status, created_at
        FROM transactions
        WHERE from_account_id = ? OR to_account_id = ?
        ORDER BY created_at DESC, id DESC
        LIMIT ?
    `, accountID, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

// GetAllTransactions retrieves recent transactions with a limit
func (s *Store) GetAllTransactions(ctx context.Context, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, from_account_id, to_account_id, amount, status, created_at
        FROM transactions
        ORDER BY created_at DESC, id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var status string
	var createdAt int64

	err := row.Scan(&tx.ID, &tx.FromAccountID, &tx.ToAccountID, &tx.Amount, &status, &createdAt)
	if err != nil {
		return nil, err
	}

	tx.Status = model.TransactionStatus(status)
	tx.CreatedAt = time.UnixMilli(createdAt)
	return tx, nil
}
