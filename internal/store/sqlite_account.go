package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) error {
	now := time.Now()
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = now
	}
	acc.UpdatedAt = acc.CreatedAt

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO accounts (id, balance, version, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
    `, acc.ID, acc.Balance, acc.Version, acc.CreatedAt.UnixMilli(), acc.UpdatedAt.UnixMilli())
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintPrimaryKey) || errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return fmt.Errorf("failed to create account '%s': %w", acc.ID, ErrAccountExists)
			}
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
				return fmt.Errorf("failed to create account '%s': %w", acc.ID, ErrConstraintViolation)
			}
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, balance, version, created_at, updated_at
        FROM accounts
        WHERE id = ?
    `, id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", id, err)
	}

	return acc, nil
}

func (s *Store) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, balance, version, created_at, updated_at
        FROM accounts
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, expectedVersion int64) error {
	result, err := s.db.ExecContext(ctx, `
        UPDATE accounts
        SET balance = ?, version = version + 1, updated_at = ?
        WHERE id = ? AND version = ?
    `, balance, time.Now().UnixMilli(), id, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update balance of account '%s': %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE id = ?)", id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check account existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("account '%s': %w", id, ErrRecordNotFound)
		}
		return fmt.Errorf("account '%s' at version %d: %w", id, expectedVersion, ErrVersionConflict)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var createdAt, updatedAt int64

	if err := row.Scan(&acc.ID, &acc.Balance, &acc.Version, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	acc.CreatedAt = time.UnixMilli(createdAt)
	acc.UpdatedAt = time.UnixMilli(updatedAt)
	return acc, nil
}
