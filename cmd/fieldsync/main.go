package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/assetops/fieldsync/internal/client/api"
	"github.com/assetops/fieldsync/internal/client/auth"
	"github.com/assetops/fieldsync/internal/client/cache"
	"github.com/assetops/fieldsync/internal/client/cli"
	"github.com/assetops/fieldsync/internal/client/iocli"
	"github.com/assetops/fieldsync/internal/client/netwatch"
	"github.com/assetops/fieldsync/internal/client/queue"
	"github.com/assetops/fieldsync/internal/client/storage/boltdb"
	"github.com/assetops/fieldsync/internal/client/sync"
	"github.com/assetops/fieldsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides FIELDSYNC_SERVER_URL)")
	dbPath := flag.String("db", "", "Path to local queue database (overrides FIELDSYNC_DB_PATH)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Флаги перекрывают окружение
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := newLogger(cfg.LogLevel)

	// Контекст завершается по Ctrl+C, watch-режим использует это для
	// остановки фоновых горутин
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Локальное хранилище очереди и сессии
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	// Кеш активов для офлайн-чтения
	assetCache, err := cache.New(ctx, cfg.CachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open asset cache: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := assetCache.Close(); err != nil {
			logger.Error("Failed to close asset cache", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)

	// Подхватываем сохраненную сессию, если она есть и не истекла
	authService := auth.NewService(apiClient, boltStorage, logger)
	if session, err := authService.CurrentSession(ctx); err == nil {
		apiClient.SetAccessToken(session.AccessToken)
	} else if !errors.Is(err, auth.ErrNotAuthenticated) {
		logger.Warn("Failed to load session", "error", err)
	}

	monitor := netwatch.NewMonitor(
		netwatch.ProberFunc(apiClient.Health),
		cfg.ProbeInterval,
		logger,
	)

	queueManager := queue.NewManager(boltStorage, logger)
	if err := queueManager.Reload(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load operation queue: %v\n", err)
		os.Exit(1)
	}

	executor := sync.NewAPIExecutor(apiClient)
	engine := sync.NewService(queueManager, executor, monitor, boltStorage, cfg.MaxRetries, logger)
	scheduler := sync.NewScheduler(engine, queueManager, monitor, cfg.SyncInterval, logger)

	// Enqueue при живом соединении сразу дергает синхронизацию
	queueManager.BindSyncTrigger(monitor.Online, scheduler.Kick)

	// Одиночные команды (всё, кроме watch) делают один probe, чтобы
	// online/offline ветки команд работали без фонового монитора
	if command != "watch" {
		monitor.Probe(ctx)
	}

	c := cli.New(
		iocli.NewStdio(),
		apiClient,
		authService,
		assetCache,
		queueManager,
		engine,
		scheduler,
		monitor,
		boltStorage,
		cfg.OfflineMode,
	)

	c.Run(ctx, command, args[1:])
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("FieldSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
