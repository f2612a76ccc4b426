package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/rss-digest/app/api"
	"github.com/lysyi3m/rss-digest/app/cfg"
	"github.com/lysyi3m/rss-digest/app/channel"
	"github.com/lysyi3m/rss-digest/app/database"
	"github.com/lysyi3m/rss-digest/app/delivery"
	"github.com/lysyi3m/rss-digest/app/digest"
	"github.com/lysyi3m/rss-digest/app/feed"
	"github.com/lysyi3m/rss-digest/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting RSS Digest", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	seenRepo := database.NewSeenRepository(db, appCfg.FromStart)
	if seen, err := seenRepo.LoadAll(); err != nil {
		slog.Warn("Failed to load seen entries", "error", err)
	} else {
		total := 0
		for _, ids := range seen {
			total += len(ids)
		}
		slog.Info("Seen entries loaded", "feeds", len(seen), "entries", total)
	}

	configCache := channel.NewConfigCache(appCfg.ChannelsDir)
	if err := configCache.Run(); err != nil {
		slog.Error("Failed to load channel configurations", "error", err)
		os.Exit(1)
	}
	if configCache.GetConfigCount() == 0 {
		slog.Error("No channel configurations found", "dir", appCfg.ChannelsDir)
		os.Exit(1)
	}
	slog.Info("Channel configurations loaded", "channels", configCache.GetConfigCount(), "feeds", configCache.GetFeedCount())

	sender, err := delivery.NewTelegramSender(appCfg.TelegramToken, time.Duration(appCfg.DeliveryTimeout)*time.Second)
	if err != nil {
		slog.Error("Failed to connect to Telegram", "error", err)
		os.Exit(1)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	fetcher := feed.NewFetcher(httpClient, appCfg.UserAgent)
	parser := feed.NewParser()
	taxonomies := digest.DefaultTaxonomies()

	scheduler := tasks.NewScheduler(configCache, fetcher, parser, taxonomies, seenRepo, sender)

	if appCfg.Once {
		slog.Info("Running single digest cycle", "from_start", appCfg.FromStart, "channel", appCfg.Channel)
		scheduler.RunOnce(context.Background())
		slog.Info("Digest cycle complete")
		return
	}

	scheduler.Start()
	defer scheduler.Stop()
	slog.Info("Scheduler started", "interval_seconds", appCfg.SchedulerInterval, "workers", appCfg.WorkerCount)

	apiHandler := api.NewHandler(seenRepo, configCache)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
