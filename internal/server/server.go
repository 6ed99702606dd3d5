// Package server exposes the ledger over HTTP.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/service"
	"github.com/pterm/pterm"
)

type Server struct {
	app    *fiber.App
	svc    *service.Service
	cfg    *config.Config
	logger *pterm.Logger
}

func New(svc *service.Service, cfg *config.Config, logger *pterm.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			AppName:               "tally",
			ErrorHandler:          errorHandler,
		}),
		svc:    svc,
		cfg:    cfg,
		logger: logger,
	}

	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(s.logRequests)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/health", s.health)

	api := s.app.Group("/api")
	api.Post("/transfer", s.transfer)
	api.Get("/accounts", s.listAccounts)
	api.Get("/accounts/:id", s.getAccount)
	api.Get("/accounts/:id/transactions", s.accountTransactions)
	api.Get("/transactions", s.listTransactions)
	api.Get("/transactions/:id", s.getTransaction)
}

// App returns the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most server.shutdown_timeout.
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", s.logger.Args("addr", s.cfg.Server.Addr))
		listenErr <- s.app.Listen(s.cfg.Server.Addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if err := s.app.ShutdownWithTimeout(timeout); err != nil {
		return err
	}
	if err := <-listenErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.logger.Info("server exited")
	return nil
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	s.logger.Debug("request", s.logger.Args(
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start).String(),
	))
	return err
}
