package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wordspark/echo/internal/api"
	"github.com/wordspark/echo/internal/app"
	"github.com/wordspark/echo/internal/config"
	"github.com/wordspark/echo/internal/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Echo Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("seed_db_path=%s", cfg.SeedDBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("user_id=%d", cfg.UserID)
	log.Debug("default_daily_goal=%d", cfg.DefaultDailyGoal)
	log.Debug("timezone=%s", cfg.Timezone)
	log.Debug("week_start=%s", cfg.WeekStart)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Error("failed to start: %v", err)
		os.Exit(1)
	}
	if err := a.Bootstrap(ctx); err != nil {
		log.Error("failed to bootstrap user: %v", err)
		a.Close()
		os.Exit(1)
	}

	a.ImportPool.Start(ctx)

	srv := &api.Server{
		WordService:     a.Words,
		PlanService:     a.Plans,
		CalendarService: a.Calendar,
		UserService:     a.Users,
		ProgressService: a.Progress,
		JobQueue:        a.Jobs,
		Health:          a.DB,
		RequestTimeout:  20 * time.Second,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	// Queued imports drain before the store closes.
	log.Debug("stopping import pool and closing database")
	if err := a.Close(); err != nil {
		log.Error("failed to close database: %v", err)
	}

	log.Info("===========================================")
	log.Info("Echo Server Stopped")
	log.Info("===========================================")
}
