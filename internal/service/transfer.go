package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/lock"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

const defaultLockTimeout = 5 * time.Second

// TransferService moves money between two accounts. Every call debits,
// credits and records the transaction as one unit, or changes nothing.
type TransferService struct {
	runner store.TxRunner
	locks  *lock.Locker
	config *config.Config
	logger *pterm.Logger

	now   func() time.Time
	newID func() string
}

func NewTransferService(runner store.TxRunner, locks *lock.Locker, cfg *config.Config, logger *pterm.Logger) *TransferService {
	return &TransferService{
		runner: runner,
		locks:  locks,
		config: cfg,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Transfer debits fromID and credits toID by amount.
//
// Both accounts are held exclusively (in ascending id order) for the whole
// read-modify-write, so transfers sharing an account serialize while
// disjoint ones do not wait on each other. The returned Receipt shows the
// sender's resulting balance only.
func (ts *TransferService) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) (*Receipt, error) {
	txID := ts.newID()
	log := ts.logger.Args("tx", txID, "from", fromID, "to", toID, "amount", amount.String())

	if err := ts.validate(fromID, toID, amount); err != nil {
		ts.logger.Warn("transfer rejected", log, ts.logger.Args("reason", err.Error()))
		return nil, err
	}

	timeout := ts.config.Transfer.LockTimeout
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	release, err := ts.locks.Lock(lockCtx, fromID, toID)
	if err != nil {
		ts.logger.Warn("transfer timed out waiting for accounts", log, ts.logger.Args("timeout", timeout.String()))
		return nil, fmt.Errorf("%w: accounts '%s' and '%s' stayed busy for %s: %w", ErrTimeout, fromID, toID, timeout, err)
	}
	defer release()

	record := &model.Transaction{
		ID:            txID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Status:        model.StatusCompleted,
		CreatedAt:     ts.now(),
	}

	var sender *model.Account
	err = ts.runner.ExecTx(ctx, func(repo store.Repository) error {
		from, err := loadAccount(ctx, repo, fromID)
		if err != nil {
			return err
		}
		to, err := loadAccount(ctx, repo, toID)
		if err != nil {
			return err
		}

		if from.Balance.LessThan(amount) {
			return fmt.Errorf("%w: account '%s' holds %s, cannot send %s",
				ErrInsufficientFunds, from.ID, from.Balance.String(), amount.String())
		}

		debited := from.Balance.Sub(amount)
		credited := to.Balance.Add(amount)

		if err := repo.UpdateBalance(ctx, from.ID, debited, from.Version); err != nil {
			return err
		}
		if err := repo.UpdateBalance(ctx, to.ID, credited, to.Version); err != nil {
			return err
		}
		if err := repo.AppendTransaction(ctx, record); err != nil {
			return err
		}

		from.Balance = debited
		from.Version++
		sender = from
		return nil
	})
	if err != nil {
		err = classify(err)
		ts.logger.Warn("transfer failed", log, ts.logger.Args("kind", KindOf(err).String(), "error", err.Error()))
		return nil, err
	}

	ts.logger.Info("transfer completed", log)
	return newReceipt(record, sender), nil
}

func (ts *TransferService) validate(fromID, toID string, amount decimal.Decimal) error {
	if fromID == "" || toID == "" {
		return fmt.Errorf("%w: both account ids are required", ErrInvalidTransfer)
	}
	if fromID == toID {
		return fmt.Errorf("%w: cannot transfer from account '%s' to itself", ErrInvalidTransfer, fromID)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be > 0 (got %s)", ErrInvalidTransfer, amount.String())
	}
	if scale := ts.config.Transfer.AmountScale; !utils.FitsScale(amount, scale) {
		return fmt.Errorf("%w: amount %s has more than %d decimal places", ErrInvalidTransfer, amount.String(), scale)
	}
	return nil
}

func loadAccount(ctx context.Context, repo store.AccountRepository, id string) (*model.Account, error) {
	acc, err := repo.GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrAccountNotFound, id)
		}
		return nil, err
	}
	return acc, nil
}
