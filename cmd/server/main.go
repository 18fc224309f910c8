package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/johndn/portfolio/internal/config"
	"github.com/johndn/portfolio/internal/content"
	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/logging"
	"github.com/johndn/portfolio/internal/server"
	"github.com/johndn/portfolio/internal/service"
	"github.com/johndn/portfolio/internal/tasks"
	"github.com/johndn/portfolio/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logConfig := &logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Requests:   cfg.LogRequests,
	}
	if err := logConfig.Validate(); err != nil {
		panic(err)
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warn("Tracing disabled: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	database, err := db.Initialize(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	defer database.Close()
	logger.Info("Database ready (%s)", database.Dialect())

	store, err := content.NewStore(cfg.ContentFile)
	if err != nil {
		logger.Error("Failed to load content from %s: %v", cfg.ContentFile, err)
		os.Exit(1)
	}
	catalog := store.Catalog()
	logger.Info("Loaded %d posts and %d projects", len(catalog.Posts()), len(catalog.Projects()))

	contentReload := tasks.NewContentReload(store, cfg.ContentReloadInterval)
	contentReload.Start()
	defer contentReload.Stop()

	var notifier service.Notifier
	if tg := service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID); tg != nil {
		notifier = tg
		logger.Info("Telegram notifications enabled")
	}

	srv := server.NewServer(cfg, database, store)
	if err := srv.Init(server.Options{Notifier: notifier}); err != nil {
		logger.Error("Failed to initialize server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Server stopped with error: %v", err)
		os.Exit(1)
	}
}
