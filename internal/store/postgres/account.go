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

func (s *Store) CreateAccount(ctx context.Context, acc *model.Account) error {
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now()
	}
	acc.UpdatedAt = acc.CreatedAt

	_, err := s.db.Exec(ctx, `
        INSERT INTO accounts (id, balance, version, created_at, updated_at)
        VALUES ($1, $2::numeric, $3, $4, $5)
    `, acc.ID, acc.Balance.String(), acc.Version, acc.CreatedAt, acc.UpdatedAt)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("failed to create account '%s': %w", acc.ID, sentinel)
		}
		return fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return nil
}

// GetAccount reads one account. Inside ExecTx the row stays locked until the
// transaction ends, so a concurrent writer in another process waits for it.
func (s *Store) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	query := `
        SELECT id, balance::text, version, created_at, updated_at
        FROM accounts
        WHERE id = $1`
	if s.inTx {
		query += " FOR UPDATE"
	}

	acc, err := scanAccount(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account '%s': %w", id, store.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s': %w", id, err)
	}

	return acc, nil
}

func (s *Store) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, balance::text, version, created_at, updated_at
        FROM accounts
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

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
	tag, err := s.db.Exec(ctx, `
        UPDATE accounts
        SET balance = $1::numeric, version = version + 1, updated_at = NOW()
        WHERE id = $2 AND version = $3
    `, balance.String(), id, expectedVersion)
	if err != nil {
		if sentinel := constraintError(err); sentinel != nil {
			return fmt.Errorf("failed to update balance of account '%s': %w", id, sentinel)
		}
		return fmt.Errorf("failed to update balance of account '%s': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := s.db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)", id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check account existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("account '%s': %w", id, store.ErrRecordNotFound)
		}
		return fmt.Errorf("account '%s' at version %d: %w", id, expectedVersion, store.ErrVersionConflict)
	}

	return nil
}

func scanAccount(row pgx.Row) (*model.Account, error) {
	acc := &model.Account{}
	var balance string

	if err := row.Scan(&acc.ID, &balance, &acc.Version, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", balance, err)
	}
	acc.Balance = parsed
	return acc, nil
}
