package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCommand(NewAppConfigFromEnv()).ExecuteContext(ctx)
	stop()

	os.Exit(HandleExitError(os.Stderr, err))
}

func NewRootCommand(config AppConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zeotap",
		Short:         "Spreadsheet service with formula evaluation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&config.DatabasePath, "db", config.DatabasePath, "bbolt database file (env DATABASE_FILEPATH)")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "DEBUG, INFO, WARNING, ERROR... (env LOG_LEVEL)")
	flags.StringVar(&config.LogEnvironment, "log-environment", config.LogEnvironment, "LOCAL or GOOGLE (env LOG_ENVIRONMENT)")
	flags.StringVar((*string)(&config.RecalculationMode), "recalculation-mode", string(config.RecalculationMode),
		"single or fixed-point (env RECALCULATION_MODE)")
	flags.IntVar(&config.MaxRecalculationPasses, "max-recalculation-passes", config.MaxRecalculationPasses,
		"pass limit in fixed-point mode")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunApp(cmd.Context(), config)
		},
	}
	serveCmd.Flags().StringVar(&config.ListenAddress, "listen", config.ListenAddress, "listen address (env LISTEN_ADDRESS)")

	var outputPath string
	exportCmd := &cobra.Command{
		Use:   "export <sheet_id>",
		Short: "Export a stored sheet to an xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = args[0] + ".xlsx"
			}
			return RunExport(cmd.Context(), config, args[0], outputPath)
		},
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, <sheet_id>.xlsx by default")

	rootCmd.AddCommand(serveCmd, exportCmd)
	return rootCmd
}
