package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/notes-api/internal/config"
	"github.com/deppfellow/notes-api/internal/logger"
)

// rootCmd runs the API server when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "notes-api",
	Short: "HTTP API for creating, listing, updating and deleting notes",
	Long: `notes-api serves a JSON API over a PostgreSQL notes table.
Configuration is read from NOTES_* environment variables and an optional .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap loads config and builds the application logger.
// Callers own the returned LoggerService and must shut it down.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log, nil
}
