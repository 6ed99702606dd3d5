package cmd

import (
	"net/url"
	"os"

	"github.com/hance08/tally/internal/app"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ui/views"
	"github.com/hance08/tally/internal/utils"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database location, and ledger totals.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
			}

			return runner.Run(cmd)
		},
	}
}

func (r *infoRunner) Run(cmd *cobra.Command) error {
	cfg := r.app.Config
	ctx := cmd.Context()

	accounts, err := r.app.Service.Account.GetAllAccounts(ctx)
	if err != nil {
		return err
	}
	total, err := r.app.Service.Account.TotalFunds(ctx)
	if err != nil {
		return err
	}

	appDir := getAppDataDirOrUnknown()

	location := redactURL(cfg.Database.URL)
	dbExists := true
	if cfg.Database.Driver != config.DriverPostgres {
		location = cfg.Database.Path
		if location == "" {
			location = appDir + string(os.PathSeparator) + "tally.db"
		}
		_, statErr := os.Stat(location)
		dbExists = statErr == nil
	}

	items := views.SystemInfoItem{
		ConfigPath:  cfg.ConfigPath,
		Driver:      cfg.Database.Driver,
		DBLocation:  location,
		DBExists:    dbExists,
		ServerAddr:  cfg.Server.Addr,
		LockTimeout: cfg.Transfer.LockTimeout.String(),
		AmountScale: cfg.Transfer.AmountScale,
		Accounts:    len(accounts),
		TotalFunds:  utils.FormatAmount(total, cfg.Transfer.AmountScale),
		AppDataDir:  appDir,
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "(unparseable url)"
	}
	return u.Redacted()
}
