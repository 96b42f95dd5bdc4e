package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-schedule-bot/internal/database"
	"github.com/diegoclair/slack-schedule-bot/internal/domain/service"
	"github.com/diegoclair/slack-schedule-bot/internal/handlers"
	"github.com/diegoclair/slack-schedule-bot/internal/scheduler"
	"github.com/diegoclair/slack-schedule-bot/migrator/sqlite"
	"github.com/diegoclair/slack-schedule-bot/pkg/logger"
	"github.com/pkg/errors"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve slash commands and post due messages",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		logger.G(ctx).Info("running migrations")
		if err := sqlite.Migrate(db.DB()); err != nil {
			return errors.Wrap(err, "failed to run migrations")
		}

		slackClient := slack.New(cfg.SlackBotToken)
		services := service.NewInstance(database.NewInstance(db), slackClient)

		sched := scheduler.New(services.Scheduling, cfg.SchedulerSpec, cfg.Location())
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop(context.Background())

		handler := handlers.New(services.Scheduling, cfg.SlackSigningSecret, cfg.Zone())

		mux := http.NewServeMux()
		mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "OK")
		})

		server := &http.Server{Addr: ":" + cfg.Port, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.G(ctx).WithError(err).Error("failed to shut down server")
			}
		}()

		logger.G(ctx).WithField("port", cfg.Port).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	},
}
