package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"quirknotes/internal/clients/mongo"
	"quirknotes/internal/config"
	"quirknotes/internal/logger"
	"quirknotes/internal/services/notes"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	log *slog.Logger
)

// rootCmd is the seed tool; every subcommand talks to the database from the usual config.
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill or wipe the QuirkNotes database for local development",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		cfg.LogFormat = "text"

		log, err = logger.Init(cfg)
		return err
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// withRepo connects, hands the notes repository to fn and disconnects afterwards.
func withRepo(ctx context.Context, fn func(notes.Repository) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	_, db, err := mongo.Init(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := mongo.Shutdown(context.Background()); err != nil {
			log.Warn("mongo shutdown", "err", err)
		}
	}()

	return fn(mongo.NewNotesRepo(db))
}
