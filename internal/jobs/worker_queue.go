package jobs

import (
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool *worker.Pool
	importer   worker.WordImporter
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importer worker.WordImporter) JobQueue {
	return &WorkerQueue{importPool: importPool, importer: importer}
}

func (q *WorkerQueue) EnqueueImport(words []models.Word) error {
	return q.importPool.Submit(&worker.ImportWordsJob{
		Importer: q.importer,
		Words:    words,
	})
}
