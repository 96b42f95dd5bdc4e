package main

import (
	"fmt"
	"os"

	"github.com/diegoclair/slack-schedule-bot/internal/config"
	"github.com/diegoclair/slack-schedule-bot/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bot",
	Short: "Slack bot that posts messages on a schedule",
	Long:  `Runs the /schedule slash command and posts scheduled messages when they are due.`,
	// without a subcommand the bot serves
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

// loadConfig reads .env and the environment and sets up logging.
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.L.Debug(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(recurrenceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
