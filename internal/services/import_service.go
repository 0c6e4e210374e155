package services

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// ImportService handles word import business logic
type ImportService interface {
	// Import writes words, replacing existing ids, and appends the ids to
	// the user's learning queue. Without a plan one is created from every
	// stored word, as Initialize does. Entries without an id or a word are
	// skipped, as are repeated ids after the first.
	Import(ctx context.Context, words []models.Word) (*models.ImportResult, error)
}

type importService struct {
	wordRepo repository.WordRepository
	planRepo repository.PlanRepository
	cfg      PlanConfig
}

// NewImportService creates a new ImportService
func NewImportService(wordRepo repository.WordRepository, planRepo repository.PlanRepository, cfg PlanConfig) ImportService {
	return &importService{wordRepo: wordRepo, planRepo: planRepo, cfg: cfg}
}

func (s *importService) Import(ctx context.Context, words []models.Word) (*models.ImportResult, error) {
	log := logger.FromContext(ctx).WithField("user_id", s.cfg.UserID)
	log.Info("importing %d words", len(words))

	valid := lo.Filter(words, func(w models.Word, _ int) bool {
		return w.ID > 0 && strings.TrimSpace(w.Text) != ""
	})
	valid = lo.UniqBy(valid, func(w models.Word) int64 { return w.ID })

	result := &models.ImportResult{Received: len(words), Skipped: len(words) - len(valid)}
	if len(valid) == 0 {
		log.Warn("nothing to import")
		return result, nil
	}

	n, err := s.wordRepo.InsertBatch(ctx, valid)
	if err != nil {
		log.Error("failed to insert words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	result.Imported = n

	plan, err := s.planRepo.Get(ctx, s.cfg.UserID)
	if err != nil {
		log.Error("failed to load learning plan: %v", err)
		return nil, errors.NewInternalError(err)
	}

	var queued int
	if plan == nil {
		queued, err = s.createPlan(ctx)
	} else {
		ids := lo.Map(valid, func(w models.Word, _ int) int64 { return w.ID })
		queued, err = s.planRepo.AppendToQueue(ctx, s.cfg.UserID, ids)
	}
	if err != nil {
		log.Error("failed to queue imported words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	result.Queued = queued

	log.Info("import finished: imported=%d, skipped=%d, queued=%d", result.Imported, result.Skipped, result.Queued)
	return result, nil
}

// createPlan queues every stored word in random order under the default goal.
func (s *importService) createPlan(ctx context.Context) (int, error) {
	ids, err := s.wordRepo.AllIDs(ctx)
	if err != nil {
		return 0, err
	}
	queue := models.EncodeQueue(lo.Shuffle(ids))
	plan := models.LearningPlan{
		UserID:           s.cfg.UserID,
		DefaultDailyGoal: s.cfg.DefaultDailyGoal,
		LearningQueue:    &queue,
	}
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info("created learning plan with %d queued words", len(ids))
	return len(ids), nil
}
