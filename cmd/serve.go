package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/server"
	"github.com/spf13/cobra"
)

type serveRunner struct {
	app  *app.App
	addr string
}

func NewServeCmd(a *app.App) *cobra.Command {
	runner := &serveRunner{app: a}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the ledger over HTTP until interrupted.

  POST /api/transfer                 {"from": "...", "to": "...", "amount": "30.00"}
  GET  /api/accounts[/:id]
  GET  /api/accounts/:id/transactions
  GET  /api/transactions[/:id]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&runner.addr, "addr", "a", "", "listen address (overrides server.addr)")

	return cmd
}

func (r *serveRunner) Run(cmd *cobra.Command) error {
	if r.addr != "" {
		r.app.Config.Server.Addr = r.addr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(r.app.Service, r.app.Config, r.app.Logger).Run(ctx)
}
