package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const maxListLimit = 1000

type transferRequest struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) transfer(c *fiber.Ctx) error {
	var req transferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}

	receipt, err := s.svc.Transfer.Transfer(c.UserContext(), req.From, req.To, req.Amount)
	if err != nil {
		return s.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(s.receiptView(receipt))
}

func (s *Server) listAccounts(c *fiber.Ctx) error {
	accounts, err := s.svc.Account.GetAllAccounts(c.UserContext())
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, s.accountView(acc))
	}
	return c.JSON(out)
}

func (s *Server) getAccount(c *fiber.Ctx) error {
	acc, err := s.svc.Account.GetAccount(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(s.accountView(acc))
}

func (s *Server) accountTransactions(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}

	txs, err := s.svc.Transaction.GetTransactionHistory(c.UserContext(), c.Params("id"), limit)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(s.transactionViews(txs))
}

func (s *Server) listTransactions(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}

	txs, err := s.svc.Transaction.GetRecentTransactions(c.UserContext(), limit)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(s.transactionViews(txs))
}

func (s *Server) getTransaction(c *fiber.Ctx) error {
	tx, err := s.svc.Transaction.GetTransaction(c.UserContext(), c.Params("id"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(s.transactionView(tx))
}

// parseLimit reads ?limit=. Absent means the store default; values above
// maxListLimit are clamped.
func parseLimit(c *fiber.Ctx) (int, error) {
	if c.Query("limit") == "" {
		return 0, nil
	}

	limit := c.QueryInt("limit", -1)
	if limit < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, nil
}
