package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(filepath.Join(t.TempDir(), "tally.db"), migrations.FS, 1)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func seed(t *testing.T, s *Store, id, balance string) {
	t.Helper()
	err := s.CreateAccount(context.Background(), &model.Account{
		ID:      id,
		Balance: decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
}

func TestCreateAndGetAccount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed(t, s, "acc-1", "100.00")

	acc, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", acc.ID)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("100")), "balance=%s", acc.Balance)
	assert.Equal(t, int64(0), acc.Version)
	assert.False(t, acc.CreatedAt.IsZero())
}

func TestCreateAccountDuplicate(t *testing.T) {
	s := newTestStore(t)

	seed(t, s, "acc-1", "1")
	err := s.CreateAccount(context.Background(), &model.Account{ID: "acc-1", Balance: decimal.Zero})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestGetAccountNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetAccount(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestGetAllAccountsOrdered(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "b", "2")
	seed(t, s, "a", "1")

	accounts, err := s.GetAllAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "a", accounts[0].ID)
	assert.Equal(t, "b", accounts[1].ID)
}

func TestUpdateBalanceVersionCheck(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "acc-1", "100")

	require.NoError(t, s.UpdateBalance(ctx, "acc-1", decimal.RequireFromString("70.50"), 0))

	acc, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.Version)
	assert.Equal(t, "70.5", acc.Balance.String())

	err = s.UpdateBalance(ctx, "acc-1", decimal.Zero, 0)
	assert.ErrorIs(t, err, ErrVersionConflict)

	err = s.UpdateBalance(ctx, "missing", decimal.Zero, 0)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestExecTxRollback(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "acc-1", "100")
	seed(t, s, "acc-2", "0")

	boom := errors.New("boom")
	err := s.ExecTx(ctx, func(repo Repository) error {
		if err := repo.UpdateBalance(ctx, "acc-1", decimal.RequireFromString("40"), 0); err != nil {
			return err
		}
		if err := repo.UpdateBalance(ctx, "acc-2", decimal.RequireFromString("60"), 0); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	acc1, err := s.GetAccount(ctx, "acc-1")
	require.NoError(t, err)
	acc2, err := s.GetAccount(ctx, "acc-2")
	require.NoError(t, err)
	assert.Equal(t, "100", acc1.Balance.String())
	assert.Equal(t, "0", acc2.Balance.String())
	assert.Equal(t, int64(0), acc1.Version)
}

func TestExecTxNested(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.ExecTx(ctx, func(repo Repository) error {
		inner, ok := repo.(*Store)
		require.True(t, ok)
		return inner.ExecTx(ctx, func(Repository) error { return nil })
	})
	assert.Error(t, err)
}

func TestTransactionLog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "acc-1", "100")
	seed(t, s, "acc-2", "0")
	seed(t, s, "acc-3", "0")

	base := time.Now().Add(-time.Minute)
	records := []*model.Transaction{
		{ID: "tx-1", FromAccountID: "acc-1", ToAccountID: "acc-2", Amount: decimal.RequireFromString("10"), CreatedAt: base},
		{ID: "tx-2", FromAccountID: "acc-2", ToAccountID: "acc-3", Amount: decimal.RequireFromString("5"), CreatedAt: base.Add(time.Second)},
		{ID: "tx-3", FromAccountID: "acc-1", ToAccountID: "acc-3", Amount: decimal.RequireFromString("1.25"), CreatedAt: base.Add(2 * time.Second)},
	}
	for _, r := range records {
		require.NoError(t, s.AppendTransaction(ctx, r))
	}

	got, err := s.GetTransactionByID(ctx, "tx-3")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
	assert.Equal(t, "acc-1", got.FromAccountID)
	assert.Equal(t, "acc-3", got.ToAccountID)
	assert.Equal(t, "1.25", got.Amount.String())

	_, err = s.GetTransactionByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	all, err := s.GetAllTransactions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "tx-3", all[0].ID)
	assert.Equal(t, "tx-1", all[2].ID)

	history, err := s.GetTransactionsByAccount(ctx, "acc-2", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "tx-2", history[0].ID)
	assert.Equal(t, "tx-1", history[1].ID)

	limited, err := s.GetAllTransactions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestTransactionLogIsAppendOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "acc-1", "100")
	seed(t, s, "acc-2", "0")

	require.NoError(t, s.AppendTransaction(ctx, &model.Transaction{
		ID: "tx-1", FromAccountID: "acc-1", ToAccountID: "acc-2", Amount: decimal.RequireFromString("1"),
	}))

	_, err := s.db.ExecContext(ctx, "UPDATE transactions SET amount = '2' WHERE id = 'tx-1'")
	assert.Error(t, err)
	_, err = s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = 'tx-1'")
	assert.Error(t, err)

	_, err = s.GetTransactionByID(ctx, "tx-1")
	assert.NoError(t, err)
}

func TestAppendTransactionUnknownAccount(t *testing.T) {
	s := newTestStore(t)
	seed(t, s, "acc-1", "100")

	err := s.AppendTransaction(context.Background(), &model.Transaction{
		ID: "tx-1", FromAccountID: "acc-1", ToAccountID: "ghost", Amount: decimal.RequireFromString("1"),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}
