package worker

import (
	"context"

	"github.com/wordspark/echo/internal/models"
)

// WordImporter is the part of the import service a job needs.
type WordImporter interface {
	Import(ctx context.Context, words []models.Word) (*models.ImportResult, error)
}

// ImportWordsJob writes a batch of words in the background.
type ImportWordsJob struct {
	Importer WordImporter
	Words    []models.Word
	// Done, when set, receives the outcome.
	Done func(*models.ImportResult, error)
}

func (j *ImportWordsJob) Name() string { return "import_words" }

func (j *ImportWordsJob) Run(ctx context.Context) error {
	result, err := j.Importer.Import(ctx, j.Words)
	if j.Done != nil {
		j.Done(result, err)
	}
	return err
}
