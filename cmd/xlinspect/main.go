// Package main provides the CLI entry point for xlinspect-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlinspect-go/internal/config"
	"github.com/ukaji3/xlinspect-go/pkg/logger"
	"github.com/ukaji3/xlinspect-go/pkg/xlinspect"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(cfg)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlinspect [workbook]",
		Short: "Print the sheet names and a preview of every sheet in a workbook",
		Long: `xlinspect opens an Excel workbook (.xlsx, .xlsm or .xls), lists its
sheets and prints the first rows of each one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.FilePath = args[0]
			}
			logger.Init(cfg.LogLevel, cfg.AppEnv)
			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}

	cfg.BindFlags(rootCmd.Flags())

	return rootCmd
}

// errInspectionFailed is returned from run when --fail-exit-code is set.
// The message has already been printed.
var errInspectionFailed = errors.New("inspection failed")

// run is the error boundary around the inspection: every failure is
// printed as "Error: <message>" on out. The process still exits 0
// unless FailExitCode is set.
func run(ctx context.Context, out io.Writer, cfg *config.Config) error {
	err := inspect(ctx, out, cfg)
	if err == nil {
		return nil
	}

	logger.Error("Inspection failed", "path", cfg.FilePath, "error", err)
	fmt.Fprintf(out, "Error: %v\n", err)

	if cfg.FailExitCode {
		return errInspectionFailed
	}
	return nil
}

func inspect(ctx context.Context, out io.Writer, cfg *config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	return xlinspect.Inspect(ctx, out, opts)
}
