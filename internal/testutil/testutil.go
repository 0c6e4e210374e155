package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
	"github.com/wordspark/echo/internal/db"
	"github.com/wordspark/echo/internal/models"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// Every connection to :memory: is a separate database, so the pool is pinned
// to one connection.
func NewTestDB(t *testing.T) *sql.DB {
	conn, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(context.Background(), conn), "failed to apply migrations")
	return conn
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// InsertWords writes words straight into the Words table.
func InsertWords(t *testing.T, conn *sql.DB, words ...models.Word) {
	t.Helper()
	for _, w := range words {
		_, err := conn.Exec(`
INSERT INTO Words (wordId, wordString, phonetic, partsOfSpeech, exampleSentence, dailySubstitutes, usageAnalysis)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, w.ID, w.Text, w.Phonetic, w.PartsOfSpeechRaw, w.ExampleSentence, w.SubstitutesRaw, w.UsageAnalysis)
		require.NoError(t, err)
	}
}

// InsertPlan writes a learning plan row for userID.
func InsertPlan(t *testing.T, conn *sql.DB, userID int64, goal int, queue []int64) {
	t.Helper()
	_, err := conn.Exec(`INSERT OR REPLACE INTO LearningPlans (userId, defaultDailyGoal, learningQueue) VALUES (?, ?, ?)`,
		userID, goal, models.EncodeQueue(queue))
	require.NoError(t, err)
}

// InsertProgress writes a UserWordData row due at nextReviewAt.
func InsertProgress(t *testing.T, conn *sql.DB, userID, wordID int64, nextReviewAt string) {
	t.Helper()
	_, err := conn.Exec(`INSERT INTO UserWordData (userId, wordId, nextReviewAt) VALUES (?, ?, ?)`,
		userID, wordID, nextReviewAt)
	require.NoError(t, err)
}

func StrPtr(s string) *string { return &s }
