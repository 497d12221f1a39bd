// Package main provides the cvoutline command line tool.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tsawler/cvoutline"
	"github.com/tsawler/cvoutline/config"
)

// app holds state shared by every subcommand once the root command has
// loaded configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	strict     bool

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cvoutline",
		Short: "Resume outline and profile extraction",
		Long: "cvoutline reconstructs the title and heading outline of a rendered resume " +
			"from its layout JSON and segments it into a structured candidate profile.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	flags.BoolVar(&a.strict, "strict", false, "Validate layout JSON against its schema before processing")

	rootCmd.AddCommand(
		newOutlineCmd(a),
		newProfileCmd(a),
		newBatchCmd(a),
		newWatchCmd(a),
		newValidateCmd(a),
		newOCRCmd(a),
	)
	return rootCmd
}

// setup loads configuration and lets explicit flags override it
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log)
	return nil
}

// processor opens a layout file with the loaded settings
func (a *app) processor(path string) *cvoutline.Processor {
	p := cvoutline.Open(path).
		WithConfig(a.cfg.Engine).
		WithLogger(a.logger)
	if a.cfg.Strict {
		p = p.Strict()
	}
	return p
}

func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
