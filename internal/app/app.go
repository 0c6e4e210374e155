package app

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/wordspark/echo/internal/config"
	"github.com/wordspark/echo/internal/db"
	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/jobs"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/repository/sqlite"
	"github.com/wordspark/echo/internal/services"
	"github.com/wordspark/echo/internal/worker"
)

// App holds the store and every service built on top of it.
type App struct {
	Config config.Config
	DB     *db.DB

	Plans    services.PlanService
	Calendar services.CalendarService
	Words    services.WordService
	Users    services.UserService
	Progress services.ProgressService
	Imports  services.ImportService

	ImportPool *worker.Pool
	Jobs       jobs.JobQueue
}

// New prepares the database file, opens it and wires the services. The
// import pool is created but not started.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx).WithPrefix("app")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	copied, err := db.EnsureSeeded(ctx, cfg.DBPath, cfg.SeedDBPath)
	switch {
	case stderrors.Is(err, db.ErrSeedMissing):
		log.Warn("seed database not found, starting with an empty store: %v", err)
	case err != nil:
		return nil, fmt.Errorf("prepare database: %w", err)
	case copied:
		log.Info("copied seed database %s to %s", cfg.SeedDBPath, cfg.DBPath)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	weekStart, _ := cfg.FirstWeekday()
	planCfg := services.PlanConfig{
		UserID:           cfg.UserID,
		DefaultDailyGoal: cfg.DefaultDailyGoal,
		Location:         cfg.Location(),
		WeekStart:        weekStart,
	}

	wordRepo := sqlite.NewWordRepository(database.DB)
	planRepo := sqlite.NewPlanRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)
	userRepo := sqlite.NewUserRepository(database.DB)
	pronunciationRepo := sqlite.NewPronunciationRepository(database.DB)

	a := &App{Config: cfg, DB: database}
	a.Plans = services.NewPlanService(planRepo, progressRepo, wordRepo, planCfg)
	a.Calendar = services.NewCalendarService(a.Plans, planCfg)
	a.Words = services.NewWordService(wordRepo, pronunciationRepo)
	a.Users = services.NewUserService(userRepo, planRepo, wordRepo, planCfg)
	a.Progress = services.NewProgressService(progressRepo, wordRepo, planCfg)
	a.Imports = services.NewImportService(wordRepo, planRepo, planCfg)

	a.ImportPool = worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	a.Jobs = jobs.NewWorkerQueue(a.ImportPool, a.Imports)

	return a, nil
}

// Bootstrap makes sure the local user has a learning plan and records the
// login. A store without words is not fatal.
func (a *App) Bootstrap(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("app")

	if _, err := a.Users.Initialize(ctx); err != nil {
		if !isUnavailable(err) {
			return fmt.Errorf("initialize user: %w", err)
		}
		log.Warn("learning plan not created: %v", err)
	}
	if err := a.Users.TouchLastLogin(ctx); err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

// Close stops the import pool and closes the database.
func (a *App) Close() error {
	a.ImportPool.Stop()
	return a.DB.Close()
}

func isUnavailable(err error) bool {
	appErr, ok := errors.As(err)
	return ok && appErr.Code == errors.ErrCodeUnavailable
}
