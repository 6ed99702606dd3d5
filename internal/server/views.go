package server

import (
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/utils"
)

type accountResponse struct {
	ID        string    `json:"id"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type transactionResponse struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type senderResponse struct {
	ID      string `json:"id"`
	Balance string `json:"balance"`
}

// receiptResponse has no "to" member; the receiving account is not shown.
type receiptResponse struct {
	ID        string         `json:"id"`
	From      senderResponse `json:"from"`
	Amount    string         `json:"amount"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (s *Server) scale() int32 {
	return s.cfg.Transfer.AmountScale
}

func (s *Server) accountView(acc *model.Account) accountResponse {
	return accountResponse{
		ID:        acc.ID,
		Balance:   utils.FormatAmount(acc.Balance, s.scale()),
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

func (s *Server) transactionView(tx *model.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		From:      tx.FromAccountID,
		To:        tx.ToAccountID,
		Amount:    utils.FormatAmount(tx.Amount, s.scale()),
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt,
	}
}

func (s *Server) transactionViews(txs []*model.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, s.transactionView(tx))
	}
	return out
}

func (s *Server) receiptView(r *service.Receipt) receiptResponse {
	return receiptResponse{
		ID: r.ID,
		From: senderResponse{
			ID:      r.From.ID,
			Balance: utils.FormatAmount(r.From.Balance, s.scale()),
		},
		Amount:    utils.FormatAmount(r.Amount, s.scale()),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
