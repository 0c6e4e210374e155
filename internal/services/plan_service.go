package services

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// PlanService builds the daily learning plan
type PlanService interface {
	DailyPlan(ctx context.Context, date string) (*models.DailyLearningPlan, error)
	Today(ctx context.Context) (*models.DailyLearningPlan, error)
	WordCount(ctx context.Context, date string) (int, error)
}

type planService struct {
	planRepo     repository.PlanRepository
	progressRepo repository.ProgressRepository
	wordRepo     repository.WordRepository
	cfg          PlanConfig
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo repository.PlanRepository, progressRepo repository.ProgressRepository, wordRepo repository.WordRepository, cfg PlanConfig) PlanService {
	return &planService{
		planRepo:     planRepo,
		progressRepo: progressRepo,
		wordRepo:     wordRepo,
		cfg:          cfg,
	}
}

// DailyPlan returns the review words due on or before date plus new words
// from the front of the learning queue, never more than the day's goal in
// total. A missing plan row yields an empty plan with the default goal.
func (s *planService) DailyPlan(ctx context.Context, date string) (*models.DailyLearningPlan, error) {
	log := logger.FromContext(ctx).WithField("date", date)
	log.Debug("building daily plan")

	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return nil, errors.NewValidationError("date", "must be formatted as YYYY-MM-DD")
	}
	date = day.Format(models.DateLayout)

	result := &models.DailyLearningPlan{
		Date:        date,
		ReviewWords: []models.Word{},
		NewWords:    []models.Word{},
		DailyGoal:   s.cfg.DefaultDailyGoal,
	}

	plan, err := s.planRepo.Get(ctx, s.cfg.UserID)
	if err != nil {
		log.Error("failed to load learning plan: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if plan == nil {
		log.Debug("no learning plan for user %d", s.cfg.UserID)
		return result, nil
	}
	goal := max(plan.GoalFor(date), 0)
	result.DailyGoal = goal

	reviews, err := s.progressRepo.DueForReview(ctx, s.cfg.UserID, date, goal)
	if err != nil {
		log.Error("failed to load review words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if reviews != nil {
		result.ReviewWords = reviews
	}

	remaining := max(goal-len(result.ReviewWords), 0)
	if remaining == 0 {
		log.Debug("goal filled by %d review words", len(result.ReviewWords))
		return result, nil
	}

	queue, ok := plan.Queue()
	if !ok {
		log.Warn("learning queue is malformed, no new words scheduled")
		return result, nil
	}
	queue = lo.Uniq(queue)
	if len(queue) == 0 {
		return result, nil
	}

	newWords, err := s.wordRepo.UnclaimedFromQueue(ctx, s.cfg.UserID, queue, remaining)
	if err != nil {
		log.Error("failed to load new words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if newWords != nil {
		result.NewWords = newWords
	}

	log.Debug("plan built: reviews=%d, new=%d, goal=%d", len(result.ReviewWords), len(result.NewWords), goal)
	return result, nil
}

func (s *planService) Today(ctx context.Context) (*models.DailyLearningPlan, error) {
	return s.DailyPlan(ctx, s.cfg.today().Format(models.DateLayout))
}

func (s *planService) WordCount(ctx context.Context, date string) (int, error) {
	plan, err := s.DailyPlan(ctx, date)
	if err != nil {
		return 0, err
	}
	return plan.TotalWords(), nil
}
