package services

import (
	"context"
	"strings"

	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// MaxRandomWords caps a single random draw.
const MaxRandomWords = 100

// WordService handles word browsing and pronunciation
type WordService interface {
	ListWords(ctx context.Context, random bool) ([]models.Word, error)
	RandomWords(ctx context.Context, count int) ([]models.Word, error)
	GetWord(ctx context.Context, id int64) (*models.WordDetail, error)
	DailySentence(ctx context.Context) (string, error)
	Pronounce(ctx context.Context, word string) (*models.PronunciationResult, error)
}

type wordService struct {
	wordRepo          repository.WordRepository
	pronunciationRepo repository.PronunciationRepository
}

// NewWordService creates a new WordService
func NewWordService(wordRepo repository.WordRepository, pronunciationRepo repository.PronunciationRepository) WordService {
	return &wordService{wordRepo: wordRepo, pronunciationRepo: pronunciationRepo}
}

func (s *wordService) ListWords(ctx context.Context, random bool) ([]models.Word, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing words: random=%v", random)

	words, err := s.wordRepo.List(ctx, random)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if words == nil {
		words = []models.Word{}
	}
	return words, nil
}

func (s *wordService) RandomWords(ctx context.Context, count int) ([]models.Word, error) {
	log := logger.FromContext(ctx)
	log.Debug("drawing random words: count=%d", count)

	if count < 1 || count > MaxRandomWords {
		return nil, errors.NewValidationError("count", "must be between 1 and 100")
	}

	words, err := s.wordRepo.Random(ctx, count)
	if err != nil {
		log.Error("failed to draw random words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if words == nil {
		words = []models.Word{}
	}
	return words, nil
}

func (s *wordService) GetWord(ctx context.Context, id int64) (*models.WordDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting word: id=%d", id)

	word, err := s.wordRepo.Get(ctx, id)
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", id)
	}

	detail := word.Detail()
	return &detail, nil
}

func (s *wordService) DailySentence(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	sentence, err := s.wordRepo.RandomSentence(ctx)
	if err != nil {
		log.Error("failed to fetch sentence: %v", err)
		return "", errors.NewInternalError(err)
	}
	if sentence == nil {
		return "", errors.NewNotFoundError("sentence", "any")
	}
	return *sentence, nil
}

// Pronounce prefers the pronunciation dictionary and falls back to the
// phonetic column of a matching word.
func (s *wordService) Pronounce(ctx context.Context, word string) (*models.PronunciationResult, error) {
	log := logger.FromContext(ctx)
	word = strings.TrimSpace(word)
	log.Debug("resolving pronunciation: %s", word)

	if word == "" {
		return nil, errors.NewValidationError("word", "cannot be empty")
	}

	p, err := s.pronunciationRepo.Lookup(ctx, word)
	if err != nil {
		log.Error("failed to look up pronunciation: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if p != nil {
		return &models.PronunciationResult{Word: word, Arpabet: p.Arpabet, IPA: p.IPA(), Source: "dictionary"}, nil
	}

	w, err := s.wordRepo.FindByText(ctx, word)
	if err != nil {
		log.Error("failed to find word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if w == nil || w.Phonetic == nil || strings.TrimSpace(*w.Phonetic) == "" {
		return nil, errors.NewNotFoundError("pronunciation", word)
	}
	return &models.PronunciationResult{Word: word, Arpabet: *w.Phonetic, IPA: *w.IPA(), Source: "word"}, nil
}
