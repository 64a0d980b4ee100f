package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vanshika/insuradmin/internal/config"
	"github.com/vanshika/insuradmin/internal/logging"
	"github.com/vanshika/insuradmin/internal/menu"
	"github.com/vanshika/insuradmin/internal/service"
)

// app carries the streams and the configuration resolved before any command runs.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// newLogger builds the process logger; nil logs to errOut.
	newLogger func(config.LoggingConfig) *slog.Logger

	dataDir string
	cfg     config.Config
	logger  *slog.Logger
}

func (a *app) setup(*cobra.Command, []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.dataDir != "" {
		cfg.Storage.DataDir = a.dataDir
	}
	a.cfg = cfg
	if a.newLogger != nil {
		a.logger = a.newLogger(cfg.Logging)
	} else {
		a.logger = logging.NewWithWriter(cfg.Logging, a.errOut)
	}
	return nil
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.Default()
	}
	return a.logger
}

func (a *app) workspace() (*service.Workspace, error) {
	ws := service.NewWorkspace(a.cfg.Storage, a.logger)
	if err := ws.Load(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (a *app) portal() (*menu.Portal, error) {
	ws, err := a.workspace()
	if err != nil {
		return nil, err
	}
	return menu.NewPortal(ws, a.cfg.Storage.ReportPath(), a.in, a.out, a.logger), nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "insuradmin",
		Short: "Manage policyholders, products and payments",
		Long: `insuradmin keeps policyholders, insurance products and premium payments in
JSON files and joins them into policyholder reports.

Run without a subcommand to open the interactive portal.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(*cobra.Command, []string) error {
			p, err := a.portal()
			if err != nil {
				return err
			}
			return p.Run()
		},
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory holding the JSON collections (overrides INSURADMIN_DATA_DIR)")

	root.AddCommand(
		domainCmd(a, "policyholders", "Run the policyholder management menu", (*menu.Portal).RunPolicyholders),
		domainCmd(a, "products", "Run the product management menu", (*menu.Portal).RunProducts),
		domainCmd(a, "payments", "Run the payment management menu", (*menu.Portal).RunPayments),
		newReportCmd(a),
		newSeedCmd(a),
	)
	return root
}

// domainCmd runs a single management menu on its own, as a standalone program would.
func domainCmd(a *app, use, short string, run func(*menu.Portal) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			p, err := a.portal()
			if err != nil {
				return err
			}
			if err := run(p); err != nil {
				return err
			}
			p.Farewell()
			return nil
		},
	}
}
