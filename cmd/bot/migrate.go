package main

import (
	"github.com/diegoclair/slack-schedule-bot/internal/database"
	"github.com/diegoclair/slack-schedule-bot/migrator/sqlite"
	"github.com/diegoclair/slack-schedule-bot/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := sqlite.Migrate(db.DB()); err != nil {
			return errors.Wrap(err, "failed to run migrations")
		}
		logger.G(cmd.Context()).WithField("database", cfg.DatabasePath).Info("migrations completed")
		return nil
	},
}
