//go:build integration

package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("tally"),
		tcpostgres.WithUsername("tally"),
		tcpostgres.WithPassword("tally"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := NewStore(ctx, url, migrations.FS, 4)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func seed(t *testing.T, s *Store, id, balance string) {
	t.Helper()
	require.NoError(t, s.CreateAccount(context.Background(), &model.Account{
		ID:      id,
		Balance: decimal.RequireFromString(balance),
	}))
}

func TestPostgresStore(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed(t, s, "acc-1", "100.00")
	seed(t, s, "acc-2", "0")

	t.Run("duplicate account", func(t *testing.T) {
		err := s.CreateAccount(ctx, &model.Account{ID: "acc-1"})
		assert.ErrorIs(t, err, store.ErrAccountExists)
	})

	t.Run("missing account", func(t *testing.T) {
		_, err := s.GetAccount(ctx, "ghost")
		assert.ErrorIs(t, err, store.ErrRecordNotFound)
	})

	t.Run("version checked update", func(t *testing.T) {
		require.NoError(t, s.UpdateBalance(ctx, "acc-2", decimal.RequireFromString("5.25"), 0))
		err := s.UpdateBalance(ctx, "acc-2", decimal.Zero, 0)
		assert.ErrorIs(t, err, store.ErrVersionConflict)

		acc, err := s.GetAccount(ctx, "acc-2")
		require.NoError(t, err)
		assert.Equal(t, "5.25", acc.Balance.String())
		assert.Equal(t, int64(1), acc.Version)
	})

	t.Run("negative balance rejected", func(t *testing.T) {
		err := s.UpdateBalance(ctx, "acc-1", decimal.RequireFromString("-1"), 0)
		assert.ErrorIs(t, err, store.ErrConstraintViolation)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := s.ExecTx(ctx, func(repo store.Repository) error {
			if err := repo.UpdateBalance(ctx, "acc-1", decimal.RequireFromString("1"), 0); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		acc, err := s.GetAccount(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, "100", acc.Balance.String())
	})

	t.Run("append only log", func(t *testing.T) {
		require.NoError(t, s.AppendTransaction(ctx, &model.Transaction{
			ID: "tx-1", FromAccountID: "acc-1", ToAccountID: "acc-2", Amount: decimal.RequireFromString("2.50"),
		}))

		got, err := s.GetTransactionByID(ctx, "tx-1")
		require.NoError(t, err)
		assert.Equal(t, "2.5", got.Amount.String())
		assert.Equal(t, model.StatusCompleted, got.Status)

		_, err = s.db.Exec(ctx, "DELETE FROM transactions WHERE id = 'tx-1'")
		assert.Error(t, err)

		history, err := s.GetTransactionsByAccount(ctx, "acc-2", 0)
		require.NoError(t, err)
		assert.Len(t, history, 1)

		err = s.AppendTransaction(ctx, &model.Transaction{
			ID: "tx-2", FromAccountID: "acc-1", ToAccountID: "ghost", Amount: decimal.RequireFromString("1"),
		})
		assert.ErrorIs(t, err, store.ErrConstraintViolation)
	})
}

func TestPostgresKeepsFractionalDigits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "acc-1", "100.00")
	seed(t, s, "acc-2", "0")

	amount := decimal.RequireFromString("0.005")
	err := s.ExecTx(ctx, func(repo store.Repository) error {
		if err := repo.UpdateBalance(ctx, "acc-1", decimal.RequireFromString("99.995"), 0); err != nil {
			return err
		}
		if err := repo.UpdateBalance(ctx, "acc-2", amount, 0); err != nil {
			return err
		}
		return repo.AppendTransaction(ctx, &model.Transaction{
			ID: "tx-1", FromAccountID: "acc-1", ToAccountID: "acc-2", Amount: amount,
		})
	})
	require.NoError(t, err)

	from, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	to, err := s.GetAccount(ctx, "acc-2")
	require.NoError(t, err)
	assert.Equal(t, "99.995", from.Balance.String())
	assert.Equal(t, "0.005", to.Balance.String())
	assert.True(t, from.Balance.Add(to.Balance).Equal(decimal.NewFromInt(100)))

	tx, err := s.GetTransactionByID(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, "0.005", tx.Amount.String())
}

func TestPostgresRowLocksSerializeWriters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "acc-1", "100")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.ExecTx(ctx, func(repo store.Repository) error {
				acc, err := repo.GetAccount(ctx, "acc-1")
				if err != nil {
					return err
				}
				return repo.UpdateBalance(ctx, acc.ID, acc.Balance.Sub(decimal.NewFromInt(1)), acc.Version)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	acc, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "80", acc.Balance.String())
	assert.Equal(t, int64(20), acc.Version)
}
