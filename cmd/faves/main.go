package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/faves/internal/app"
	"github.com/MrSnakeDoc/faves/internal/config"
	"github.com/MrSnakeDoc/faves/internal/logger"
	"github.com/MrSnakeDoc/faves/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ faves: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		listen   string
		logLevel string
	)

	serve := func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		if listen != "" {
			cfg.ListenPort = listen
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
		defer func() { _ = loggerClient.Sync() }()

		a, err := app.New(context.Background(), cfg, loggerClient)
		if err != nil {
			return err
		}
		return a.Run()
	}

	cmd := &cobra.Command{
		Use:   "faves",
		Short: "A small site listing favorite things",
		Long: `faves serves categories of favorite things (books, films, ...) from
JSON documents embedded in the binary, or from a directory in dev mode.`,
		SilenceUsage: true,
		RunE:         serve,
	}

	cmd.PersistentFlags().StringVar(&listen, "listen", "", "listen address, overrides FAVES_LISTEN_PORT")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides FAVES_LOG_LEVEL")

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	})

	return cmd
}
