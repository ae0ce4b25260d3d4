package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// ============================================================================
// BUBBLY CLI — Animated bubble charts from CSV and XLSX files
// ============================================================================

const version = "0.1.0"

// Environment variables providing flag defaults.
const (
	envLogLevel = "BUBBLY_LOG_LEVEL"
	envFormat   = "BUBBLY_FORMAT"
)

func main() {
	// Load .env file if it exists
	envErr := godotenv.Load()

	rootCmd := newRootCmd()
	cobra.OnInitialize(func() {
		if envErr != nil {
			slog.Debug("Bubbly: no .env file found, using system environment variables")
		} else {
			slog.Debug("Bubbly: loaded environment variables from .env file")
		}
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "bubbly",
		Short: "Build animated bubble chart descriptors from tabular data",
		Long: `bubbly turns a CSV or XLSX table into a Plotly figure
({data, layout, frames}) for 2D and 3D bubble charts, optionally animated
over a time column and grouped by a categorical column.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr(envLogLevel, "warn"),
		"Log level: debug, info, warn, error (env "+envLogLevel+")")

	rootCmd.AddCommand(newPlotCmd(), newDiscoverCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bubbly %s\n", version)
		},
	}
}

// setupLogging installs a text handler on stderr at the given level.
func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
