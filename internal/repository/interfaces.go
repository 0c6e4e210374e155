package repository

import (
	"context"
	"time"

	"github.com/wordspark/echo/internal/models"
)

// WordRepository handles word data access
type WordRepository interface {
	List(ctx context.Context, random bool) ([]models.Word, error)
	Random(ctx context.Context, limit int) ([]models.Word, error)
	Get(ctx context.Context, id int64) (*models.Word, error)
	FindByText(ctx context.Context, text string) (*models.Word, error)
	ByIDs(ctx context.Context, ids []int64) ([]models.Word, error)
	AllIDs(ctx context.Context) ([]int64, error)
	Count(ctx context.Context) (int, error)
	RandomSentence(ctx context.Context) (*string, error)
	InsertBatch(ctx context.Context, words []models.Word) (int, error)
	// UnclaimedFromQueue returns up to limit words from the front of queue
	// that userID has no progress record for, in queue order.
	UnclaimedFromQueue(ctx context.Context, userID int64, queue []int64, limit int) ([]models.Word, error)
}

// ProgressRepository handles per user word progress
type ProgressRepository interface {
	// DueForReview returns words whose next review falls on or before date,
	// earliest first.
	DueForReview(ctx context.Context, userID int64, date string, limit int) ([]models.Word, error)
	Get(ctx context.Context, userID, wordID int64) (*models.UserWordData, error)
	Upsert(ctx context.Context, data models.UserWordData) error
	// RecordReview stores data and, when firstLearned is set, removes the
	// word from the learning queue and bumps the learned counter, all in one
	// transaction.
	RecordReview(ctx context.Context, data models.UserWordData, firstLearned bool) error
}

// PlanRepository handles learning plan data access
type PlanRepository interface {
	Get(ctx context.Context, userID int64) (*models.LearningPlan, error)
	Save(ctx context.Context, plan models.LearningPlan) error
	RemoveFromQueue(ctx context.Context, userID, wordID int64) error
	// AppendToQueue adds ids not already queued to the back of the queue and
	// reports how many were added. Without a plan row nothing is added.
	AppendToQueue(ctx context.Context, userID int64, ids []int64) (int, error)
}

// UserRepository handles user and stats data access
type UserRepository interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	First(ctx context.Context) (*models.User, error)
	TouchLastLogin(ctx context.Context, id int64, t time.Time) error
	Stats(ctx context.Context, userID int64) (*models.UserStats, error)
	SaveStats(ctx context.Context, stats models.UserStats) error
}

// PronunciationRepository handles ARPAbet pronunciation lookups
type PronunciationRepository interface {
	Lookup(ctx context.Context, word string) (*models.Pronunciation, error)
}
