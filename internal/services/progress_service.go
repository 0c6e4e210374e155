package services

import (
	"context"
	"strings"
	"time"

	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// ReviewTimestampLayout is how review timestamps are stored: local wall
// clock time, so SQLite's date() yields the local calendar day.
const ReviewTimestampLayout = "2006-01-02 15:04:05"

var acceptedReviewLayouts = []string{time.RFC3339, ReviewTimestampLayout, "2006-01-02T15:04:05"}

// ProgressService records review outcomes. It never schedules reviews:
// nextReviewAt is stored as the client sent it; a review without one keeps
// the previous value.
type ProgressService interface {
	Record(ctx context.Context, update models.ProgressUpdate) (*models.UserWordData, error)
	Get(ctx context.Context, wordID int64) (*models.UserWordData, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
	wordRepo     repository.WordRepository
	cfg          PlanConfig
}

// NewProgressService creates a new ProgressService
func NewProgressService(progressRepo repository.ProgressRepository, wordRepo repository.WordRepository, cfg PlanConfig) ProgressService {
	return &progressService{progressRepo: progressRepo, wordRepo: wordRepo, cfg: cfg}
}

func (s *progressService) Record(ctx context.Context, update models.ProgressUpdate) (*models.UserWordData, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{
		"user_id": s.cfg.UserID,
		"word_id": update.WordID,
	})
	log.Debug("recording review: correct=%v, learned=%v", update.Correct, update.Learned)

	if update.WordID <= 0 {
		return nil, errors.NewValidationError("word_id", "must be positive")
	}
	if update.MasteryLevel < 0 {
		return nil, errors.NewValidationError("mastery_level", "cannot be negative")
	}
	var nextReview *string
	if update.NextReviewAt != nil && strings.TrimSpace(*update.NextReviewAt) != "" {
		normalized, err := s.normalizeReviewTime(*update.NextReviewAt)
		if err != nil {
			return nil, err
		}
		nextReview = &normalized
	}

	word, err := s.wordRepo.Get(ctx, update.WordID)
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", update.WordID)
	}

	existing, err := s.progressRepo.Get(ctx, s.cfg.UserID, update.WordID)
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	data := models.UserWordData{UserID: s.cfg.UserID, WordID: update.WordID}
	if existing != nil {
		data = *existing
	}

	reviewedAt := s.cfg.now().Format(ReviewTimestampLayout)
	data.MasteryLevel = update.MasteryLevel
	if nextReview != nil {
		data.NextReviewAt = nextReview
	}
	data.LastReviewedAt = &reviewedAt
	if !update.Correct {
		data.IncorrectCount++
	}
	firstLearned := update.Learned && !data.IsLearned
	if update.Learned {
		data.IsLearned = true
	}

	if err := s.progressRepo.RecordReview(ctx, data, firstLearned); err != nil {
		log.Error("failed to record review: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if firstLearned {
		log.Info("word learned: %s", word.Text)
	}
	return &data, nil
}

func (s *progressService) Get(ctx context.Context, wordID int64) (*models.UserWordData, error) {
	log := logger.FromContext(ctx)

	data, err := s.progressRepo.Get(ctx, s.cfg.UserID, wordID)
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if data == nil {
		return nil, errors.NewNotFoundError("progress", wordID)
	}
	return data, nil
}

// normalizeReviewTime keeps plain dates as they are and converts timestamps
// to the configured location.
func (s *progressService) normalizeReviewTime(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.ParseInLocation(models.DateLayout, raw, s.cfg.location()); err == nil {
		return d.Format(models.DateLayout), nil
	}
	for _, layout := range acceptedReviewLayouts {
		if t, err := time.ParseInLocation(layout, raw, s.cfg.location()); err == nil {
			return t.In(s.cfg.location()).Format(ReviewTimestampLayout), nil
		}
	}
	return "", errors.NewValidationError("next_review_at", "must be a date or an RFC 3339 timestamp")
}
