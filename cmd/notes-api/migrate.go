package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/notes-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loggerService, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		return database.Migrate(cmd.Context(), &log, database.DSN(cfg))
	},
}
