package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/ridesim/app"
	"github.com/kilianp07/ridesim/infra/logger"
	"github.com/kilianp07/ridesim/pkg/export"
	"github.com/kilianp07/ridesim/scenario"
)

type runOptions struct {
	format          string
	output          string
	activityLog     string
	skipBusyDrivers bool
	logLevel        string
}

func newRunCmd(load configLoader) *cobra.Command {
	var opts runOptions
	c := &cobra.Command{
		Use:   "run <events-file>",
		Short: "Simulate an event file and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, load, opts, args[0])
		},
	}
	f := c.Flags()
	f.StringVarP(&opts.format, "format", "f", "", "report format: text, json, yaml, csv or html")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	f.StringVar(&opts.activityLog, "activity-log", "", "append every activity to this file (.jsonl, or .db for SQLite)")
	f.BoolVar(&opts.skipBusyDrivers, "skip-busy-drivers", false, "only match passengers with idle drivers")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	return c
}

func runSimulation(cmd *cobra.Command, load configLoader, opts runOptions, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := load()
	if err != nil {
		return err
	}
	if opts.format != "" {
		cfg.Report.Format = opts.format
	}
	if opts.output != "" {
		cfg.Report.Output = opts.output
	}
	if opts.activityLog != "" {
		cfg.ActivityLog.Path = opts.activityLog
	}
	if opts.skipBusyDrivers {
		cfg.Dispatch.SkipBusyDrivers = true
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	initial, err := scenario.Load(path)
	if err != nil {
		return err
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	res, err := svc.Run(ctx, initial)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), cfg.Report.Output, cfg.Report.Format, res)
}

func writeReport(stdout io.Writer, output, format string, res app.Result) error {
	if output == "" {
		return export.Write(stdout, format, res.Report)
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := export.Write(f, format, res.Report); err != nil {
		_ = f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}
