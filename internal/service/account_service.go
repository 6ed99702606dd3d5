package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/utils"
	"github.com/hance08/tally/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo   store.AccountRepository
	config *config.Config
	logger *pterm.Logger
}

func NewAccountService(repo store.AccountRepository, cfg *config.Config, logger *pterm.Logger) *AccountService {
	return &AccountService{repo: repo, config: cfg, logger: logger}
}

// CreateAccount seeds a new account. An empty id gets a generated UUID.
// This is the only way money enters the ledger.
func (as *AccountService) CreateAccount(ctx context.Context, id string, opening decimal.Decimal) (*model.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}
	if err := validation.ValidateAccountID(id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAccount, err)
	}
	if opening.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance can't be negative (got %s)", ErrInvalidAccount, opening.String())
	}
	if scale := as.config.Transfer.AmountScale; !utils.FitsScale(opening, scale) {
		return nil, fmt.Errorf("%w: opening balance %s has more than %d decimal places", ErrInvalidAccount, opening.String(), scale)
	}

	acc := &model.Account{ID: id, Balance: opening}
	if err := as.repo.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, store.ErrAccountExists) {
			return nil, fmt.Errorf("%w: account '%s' already exists: %w", ErrInvalidAccount, id, err)
		}
		return nil, classify(err)
	}

	as.logger.Info("account created", as.logger.Args("id", acc.ID, "balance", acc.Balance.String()))
	return acc, nil
}

func (as *AccountService) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	acc, err := loadAccount(ctx, as.repo, id)
	if err != nil {
		return nil, classify(err)
	}
	return acc, nil
}

func (as *AccountService) GetAllAccounts(ctx context.Context) ([]*model.Account, error) {
	accounts, err := as.repo.GetAllAccounts(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return accounts, nil
}

// TotalFunds sums every balance in the ledger. Transfers never change it.
func (as *AccountService) TotalFunds(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := as.GetAllAccounts(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Balance)
	}
	return total, nil
}
