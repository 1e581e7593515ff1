package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/qwer4es/kiberone-pvkBot/internal/bot"
	"github.com/qwer4es/kiberone-pvkBot/internal/config"
	"github.com/qwer4es/kiberone-pvkBot/internal/db"
	"github.com/qwer4es/kiberone-pvkBot/internal/health"
	"github.com/qwer4es/kiberone-pvkBot/internal/repository"
	"github.com/qwer4es/kiberone-pvkBot/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot dispatcher and the liveness endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}
}

func runServe(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("connecting to telegram: %w", err)
	}
	logger.Info("authorized on telegram", "account", api.Self.UserName)

	repo := repository.NewSQLiteSubmissionRepo(database)
	sessions := service.NewSessionStore()

	var notifier service.Notifier = service.NoopNotifier{}
	if cfg.ChannelID != "" {
		notifier = bot.NewChannelNotifier(api, cfg.ChannelID)
	} else {
		logger.Info("no broadcast channel configured, notifier disabled")
	}
	if cfg.AdminID == 0 {
		logger.Info("no administrator configured, admin surface disabled")
	}

	intake := service.NewIntakeService(repo, notifier, sessions, logger)
	admin := service.NewAdminService(repo, cfg.AdminID, cfg.DBPath)
	dispatcher := bot.NewDispatcher(api, intake, admin, service.NewLogEventObserver(os.Stderr), logger)

	healthErr := make(chan error, 1)
	go func() {
		healthErr <- health.New(cfg.HTTPAddr).Run(ctx)
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	logger.Info("bot started", "http_addr", cfg.HTTPAddr, "db", cfg.DBPath)
	dispatcher.Run(ctx, updates)

	if err := <-healthErr; err != nil {
		return fmt.Errorf("liveness server: %w", err)
	}
	return nil
}
