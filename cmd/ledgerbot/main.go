package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"ledgerbot/internal/bot"
	"ledgerbot/internal/config"
	"ledgerbot/internal/ledger"
	gsheet "ledgerbot/internal/ledger/google"
	mem "ledgerbot/internal/ledger/memory"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store ledger.Store
	switch cfg.Backend {
	case config.BackendSheets:
		creds, err := cfg.CredentialsJSON()
		if err != nil {
			logger.Error("Failed to load Google credentials", "error", err)
			os.Exit(1)
		}
		cli, err := gsheet.New(ctx, cfg.SpreadsheetID, cfg.SheetName, creds)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		store = cli
		logger.Info("Initialized Google Sheets backend", "sheet", cfg.SheetName)
	default:
		store = mem.New()
		logger.Info("Initialized memory backend")
	}

	// Connectivity failures are fatal at startup only; once serving, store
	// errors become chat replies.
	if err := store.Ping(ctx); err != nil {
		logger.Error("Ledger store unreachable; check sharing and credentials", "error", err)
		os.Exit(1)
	}

	dispatcher := bot.NewDispatcher(store, logger)
	host, err := bot.NewHost(cfg.TelegramToken, dispatcher, logger)
	if err != nil {
		logger.Error("Failed to connect to Telegram", "error", err)
		os.Exit(1)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return host.Run(ctx)
	})
	if err := g.Wait(); err != nil {
		logger.Error("Bot error", "error", err)
		os.Exit(1)
	}
	logger.Info("Bot stopped gracefully")
}
