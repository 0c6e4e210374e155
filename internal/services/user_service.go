package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/samber/lo"
	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// UserService handles the local user, its plan bootstrap and streaks
type UserService interface {
	// Initialize checks that the configured user exists and creates its
	// learning plan from the whole word list when there is none.
	Initialize(ctx context.Context) (*models.LearningPlan, error)
	Current(ctx context.Context) (*models.User, error)
	TouchLastLogin(ctx context.Context) error
	Stats(ctx context.Context) (*models.UserStats, error)
	// CheckIn records activity for date (YYYY-MM-DD, empty for today).
	CheckIn(ctx context.Context, date string) (*models.UserStats, error)
}

type userService struct {
	userRepo repository.UserRepository
	planRepo repository.PlanRepository
	wordRepo repository.WordRepository
	cfg      PlanConfig
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, planRepo repository.PlanRepository, wordRepo repository.WordRepository, cfg PlanConfig) UserService {
	return &userService{
		userRepo: userRepo,
		planRepo: planRepo,
		wordRepo: wordRepo,
		cfg:      cfg,
	}
}

func (s *userService) Initialize(ctx context.Context) (*models.LearningPlan, error) {
	log := logger.FromContext(ctx).WithField("user_id", s.cfg.UserID)
	log.Debug("initializing user")

	if _, err := s.Current(ctx); err != nil {
		return nil, err
	}

	plan, err := s.planRepo.Get(ctx, s.cfg.UserID)
	if err != nil {
		log.Error("failed to load learning plan: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if plan != nil {
		log.Debug("learning plan already present")
		return plan, nil
	}

	ids, err := s.wordRepo.AllIDs(ctx)
	if err != nil {
		log.Error("failed to load word ids: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(ids) == 0 {
		return nil, errors.NewUnavailableError("word store is empty, import words first", nil)
	}

	queue := models.EncodeQueue(lo.Shuffle(ids))
	plan = &models.LearningPlan{
		UserID:           s.cfg.UserID,
		DefaultDailyGoal: s.cfg.DefaultDailyGoal,
		LearningQueue:    &queue,
	}
	if err := s.planRepo.Save(ctx, *plan); err != nil {
		log.Error("failed to save learning plan: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("created learning plan with %d queued words", len(ids))
	return plan, nil
}

func (s *userService) Current(ctx context.Context) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.Get(ctx, s.cfg.UserID)
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if user == nil {
		return nil, errors.NewNotFoundError("user", s.cfg.UserID)
	}
	return user, nil
}

func (s *userService) TouchLastLogin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := s.userRepo.TouchLastLogin(ctx, s.cfg.UserID, s.cfg.now())
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError("user", s.cfg.UserID)
	}
	if err != nil {
		log.Error("failed to update last login: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

// Stats returns zeroed stats when the user has no stats row yet.
func (s *userService) Stats(ctx context.Context) (*models.UserStats, error) {
	log := logger.FromContext(ctx)

	stats, err := s.userRepo.Stats(ctx, s.cfg.UserID)
	if err != nil {
		log.Error("failed to get stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if stats == nil {
		stats = &models.UserStats{UserID: s.cfg.UserID}
	}
	return stats, nil
}

func (s *userService) CheckIn(ctx context.Context, date string) (*models.UserStats, error) {
	log := logger.FromContext(ctx)

	day := s.cfg.today()
	if date != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, date, s.cfg.location())
		if err != nil {
			return nil, errors.NewValidationError("date", "must be formatted as YYYY-MM-DD")
		}
		day = parsed
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}
	if stats.LastCheckinDate != nil && *stats.LastCheckinDate > day.Format(models.DateLayout) {
		return nil, errors.NewValidationError("date", "is before the last check-in")
	}

	updated := stats.CheckIn(day)
	if err := s.userRepo.SaveStats(ctx, updated); err != nil {
		log.Error("failed to save stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("checked in for %s: streak=%d", day.Format(models.DateLayout), updated.CurrentStreak)
	return &updated, nil
}
