package service

import (
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/lock"
	"github.com/hance08/tally/internal/store"
	"github.com/pterm/pterm"
)

type Service struct {
	Account     *AccountService
	Transaction *TransactionService
	Transfer    *TransferService
}

func NewService(backend store.Backend, cfg *config.Config, logger *pterm.Logger) *Service {
	return &Service{
		Account:     NewAccountService(backend, cfg, logger),
		Transaction: NewTransactionService(backend, cfg),
		Transfer:    NewTransferService(backend, lock.NewLocker(), cfg, logger),
	}
}
