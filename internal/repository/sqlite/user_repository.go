package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// timestampLayout matches the text timestamps already present in Users.
const timestampLayout = "2006-01-02T15:04:05Z"

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository implementation
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting user: id=%d", id)

	return r.scanUser(ctx, `SELECT userId, createdAt, lastLoginAt FROM Users WHERE userId = ?`, id)
}

func (r *userRepository) First(ctx context.Context) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting first user")

	return r.scanUser(ctx, `SELECT userId, createdAt, lastLoginAt FROM Users ORDER BY userId LIMIT 1`)
}

func (r *userRepository) scanUser(ctx context.Context, query string, args ...any) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")

	var u models.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.CreatedAt, &u.LastLoginAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("user not found")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, err
	}
	return &u, nil
}

// TouchLastLogin returns sql.ErrNoRows when the user does not exist.
func (r *userRepository) TouchLastLogin(ctx context.Context, id int64, t time.Time) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("updating last login: id=%d", id)

	res, err := r.db.ExecContext(ctx, `UPDATE Users SET lastLoginAt = ? WHERE userId = ?`, t.UTC().Format(timestampLayout), id)
	if err != nil {
		log.Error("failed to update last login: %v", err)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *userRepository) Stats(ctx context.Context, userID int64) (*models.UserStats, error) {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("getting stats: user_id=%d", userID)

	var s models.UserStats
	err := r.db.QueryRowContext(ctx, `
SELECT userId, currentStreak, longestStreak, lastCheckinDate, totalScore, totalWordsLearned
FROM UserStats
WHERE userId = ?
`, userID).Scan(&s.UserID, &s.CurrentStreak, &s.LongestStreak, &s.LastCheckinDate, &s.TotalScore, &s.TotalWordsLearned)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no stats for user %d", userID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get stats: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *userRepository) SaveStats(ctx context.Context, s models.UserStats) error {
	log := logger.FromContext(ctx).WithPrefix("user_repo")
	log.Debug("saving stats: user_id=%d, streak=%d", s.UserID, s.CurrentStreak)

	stmt, args, err := sqlBuilder.Insert("UserStats").
		Columns("userId", "currentStreak", "longestStreak", "lastCheckinDate", "totalScore", "totalWordsLearned").
		Values(s.UserID, s.CurrentStreak, s.LongestStreak, s.LastCheckinDate, s.TotalScore, s.TotalWordsLearned).
		Suffix(`ON CONFLICT(userId) DO UPDATE SET
    currentStreak = excluded.currentStreak,
    longestStreak = excluded.longestStreak,
    lastCheckinDate = excluded.lastCheckinDate,
    totalScore = excluded.totalScore,
    totalWordsLearned = excluded.totalWordsLearned`).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		log.Error("failed to save stats: %v", err)
		return err
	}
	return nil
}
