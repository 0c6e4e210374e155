package jobs

import "github.com/wordspark/echo/internal/models"

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueImport(words []models.Word) error
}
