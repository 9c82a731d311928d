package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lhclub/recordkeeper/internal/billiards"
	"github.com/lhclub/recordkeeper/internal/config"
	"github.com/lhclub/recordkeeper/internal/database"
	"github.com/lhclub/recordkeeper/internal/events"
	server "github.com/lhclub/recordkeeper/internal/http"
	"github.com/lhclub/recordkeeper/internal/kv"
	"github.com/lhclub/recordkeeper/internal/metrics"
	"github.com/lhclub/recordkeeper/internal/notifier"
	"github.com/lhclub/recordkeeper/internal/notifier/slack"
	"github.com/lhclub/recordkeeper/internal/registry"
	"github.com/lhclub/recordkeeper/internal/tennis"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	// The storage mode is decided once, here. A configured remote primary
	// selects the relational stores; otherwise every collection lives in the
	// local fallback store.
	var (
		userStore      registry.UserStore
		tennisStore    tennis.RecordStore
		billiardsStore billiards.RecordStore
	)
	if cfg.RemoteBacked() {
		log.Info("Using remote-backed stores", "primary", cfg.Turso.PrimaryURL)
		userStore = registry.NewStore(db)
		tennisStore = tennis.NewStore(db)
		billiardsStore = billiards.NewStore(db)
	} else {
		log.Info("Using local fallback stores", "db", cfg.DBName)
		kvStore := kv.New(db)
		userStore = registry.NewFallbackStore(kvStore)
		tennisStore = tennis.NewFallbackStore(kvStore)
		billiardsStore = billiards.NewFallbackStore(kvStore)
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var notify notifier.Notifier = notifier.Noop{}
	if cfg.Slack.Token != "" {
		notify = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("No Slack token configured, notifications disabled")
	}

	var publisher events.Publisher
	if cfg.ProjectID != "" {
		publisher = events.New(cfg.ProjectID)
	} else {
		log.Info("No GCP project configured, event publishing disabled")
		publisher = events.NewMock("")
	}

	s := server.NewServer(
		registry.NewService(userStore),
		tennis.NewService(tennisStore),
		billiards.NewService(billiardsStore),
		metricsSvc,
		metricsHandler,
		cfg,
		notify,
		publisher,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
