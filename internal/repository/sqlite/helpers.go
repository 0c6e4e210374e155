package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/samber/lo"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Helper functions shared across repository implementations

var wordColumns = []string{
	"wordId", "wordString", "phonetic", "partsOfSpeech", "exampleSentence", "dailySubstitutes", "usageAnalysis",
}

// qualified prefixes every column with a table alias.
func qualified(alias string, cols []string) []string {
	return lo.Map(cols, func(c string, _ int) string { return alias + "." + c })
}

type rowScanner interface {
	Scan(dest ...any) error
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanWord(row rowScanner) (models.Word, error) {
	var w models.Word
	err := row.Scan(&w.ID, &w.Text, &w.Phonetic, &w.PartsOfSpeechRaw, &w.ExampleSentence, &w.SubstitutesRaw, &w.UsageAnalysis)
	return w, err
}

func queryWords(ctx context.Context, db *sql.DB, query squirrel.SelectBuilder) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("repo")

	stmt, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		log.Error("failed to query words: %v", err)
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			log.Error("failed to scan word row: %v", err)
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func tx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	log := logger.FromContext(ctx).WithPrefix("repo")
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction: %v", err)
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		log.Debug("transaction rolled back due to error: %v", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction: %v", err)
		return err
	}
	log.Debug("transaction committed")
	return nil
}

// removeFromQueue drops wordID from the user's learning queue inside tx.
// A missing plan or an unreadable queue is left as is.
func removeFromQueue(ctx context.Context, tx *sql.Tx, userID, wordID int64) error {
	log := logger.FromContext(ctx).WithPrefix("repo")

	var plan models.LearningPlan
	err := tx.QueryRowContext(ctx, `SELECT learningQueue FROM LearningPlans WHERE userId = ?`, userID).Scan(&plan.LearningQueue)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no learning plan for user %d, queue untouched", userID)
		return nil
	}
	if err != nil {
		return err
	}

	ids, ok := plan.Queue()
	if !ok {
		log.Warn("learning queue for user %d is malformed, not modifying it", userID)
		return nil
	}
	remaining := lo.Without(ids, wordID)
	if len(remaining) == len(ids) {
		return nil
	}

	_, err = tx.ExecContext(ctx, `UPDATE LearningPlans SET learningQueue = ? WHERE userId = ?`, models.EncodeQueue(remaining), userID)
	if err == nil {
		log.Debug("removed word %d from queue of user %d, %d left", wordID, userID, len(remaining))
	}
	return err
}
