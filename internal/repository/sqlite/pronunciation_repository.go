package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

type pronunciationRepository struct {
	db *sql.DB
}

// NewPronunciationRepository creates a new PronunciationRepository implementation
func NewPronunciationRepository(db *sql.DB) repository.PronunciationRepository {
	return &pronunciationRepository{db: db}
}

// Lookup matches the word case-insensitively; keys are stored upper-cased.
func (r *pronunciationRepository) Lookup(ctx context.Context, word string) (*models.Pronunciation, error) {
	log := logger.FromContext(ctx).WithPrefix("pronunciation_repo")
	key := strings.ToUpper(strings.TrimSpace(word))
	log.Debug("looking up pronunciation: %s", key)

	var p models.Pronunciation
	err := r.db.QueryRowContext(ctx, `SELECT word, arpabet FROM Pronunciations WHERE word = ?`, key).Scan(&p.Word, &p.Arpabet)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no pronunciation for %s", key)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to look up pronunciation: %v", err)
		return nil, err
	}
	return &p, nil
}
