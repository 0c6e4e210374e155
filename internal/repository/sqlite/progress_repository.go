package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

// DueForReview compares calendar days, so a review due at any time on date
// is included. Values that are not SQLite dates are compared as text.
func (r *progressRepository) DueForReview(ctx context.Context, userID int64, date string, limit int) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("fetching words due for review: user_id=%d, date=%s, limit=%d", userID, date, limit)

	if limit <= 0 {
		return nil, nil
	}

	query := sqlBuilder.Select(qualified("w", wordColumns)...).
		From("UserWordData u").
		Join("Words w ON w.wordId = u.wordId").
		Where(squirrel.Eq{"u.userId": userID}).
		Where(squirrel.NotEq{"u.nextReviewAt": nil}).
		Where("COALESCE(date(u.nextReviewAt), u.nextReviewAt) <= ?", date).
		OrderBy("u.nextReviewAt ASC", "u.wordId ASC").
		Limit(uint64(limit))

	words, err := queryWords(ctx, r.db, query)
	if err != nil {
		log.Error("failed to fetch review words: %v", err)
		return nil, err
	}
	log.Debug("found %d words due for review", len(words))
	return words, nil
}

func (r *progressRepository) Get(ctx context.Context, userID, wordID int64) (*models.UserWordData, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: user_id=%d, word_id=%d", userID, wordID)

	var d models.UserWordData
	err := r.db.QueryRowContext(ctx, `
SELECT userId, wordId, masteryLevel, nextReviewAt, lastReviewedAt, incorrectCount, isLearned
FROM UserWordData
WHERE userId = ? AND wordId = ?
`, userID, wordID).Scan(&d.UserID, &d.WordID, &d.MasteryLevel, &d.NextReviewAt, &d.LastReviewedAt, &d.IncorrectCount, &d.IsLearned)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no progress for word %d", wordID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return &d, nil
}

func (r *progressRepository) Upsert(ctx context.Context, data models.UserWordData) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: user_id=%d, word_id=%d, mastery=%d", data.UserID, data.WordID, data.MasteryLevel)

	if err := upsertProgress(ctx, r.db, data); err != nil {
		log.Error("failed to upsert progress: %v", err)
		return err
	}
	return nil
}

func (r *progressRepository) RecordReview(ctx context.Context, data models.UserWordData, firstLearned bool) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("recording review: user_id=%d, word_id=%d, first_learned=%v", data.UserID, data.WordID, firstLearned)

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		if err := upsertProgress(ctx, tx, data); err != nil {
			return err
		}
		if !firstLearned {
			return nil
		}
		if err := removeFromQueue(ctx, tx, data.UserID, data.WordID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
INSERT INTO UserStats (userId, totalWordsLearned) VALUES (?, 1)
ON CONFLICT(userId) DO UPDATE SET totalWordsLearned = totalWordsLearned + 1
`, data.UserID)
		return err
	})
	if err != nil {
		log.Error("failed to record review: %v", err)
	}
	return err
}

func upsertProgress(ctx context.Context, exec execer, d models.UserWordData) error {
	stmt, args, err := sqlBuilder.Insert("UserWordData").
		Columns("userId", "wordId", "masteryLevel", "nextReviewAt", "lastReviewedAt", "incorrectCount", "isLearned").
		Values(d.UserID, d.WordID, d.MasteryLevel, d.NextReviewAt, d.LastReviewedAt, d.IncorrectCount, d.IsLearned).
		Suffix(`ON CONFLICT(userId, wordId) DO UPDATE SET
    masteryLevel = excluded.masteryLevel,
    nextReviewAt = excluded.nextReviewAt,
    lastReviewedAt = excluded.lastReviewedAt,
    incorrectCount = excluded.incorrectCount,
    isLearned = excluded.isLearned`).
		ToSql()
	if err != nil {
		return err
	}
	_, err = exec.ExecContext(ctx, stmt, args...)
	return err
}
