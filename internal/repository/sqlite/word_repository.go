package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/samber/lo"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/repository"
)

// queueChunkSize bounds the IN list of each queue lookup.
const queueChunkSize = 200

type wordRepository struct {
	db *sql.DB
}

// NewWordRepository creates a new WordRepository implementation
func NewWordRepository(db *sql.DB) repository.WordRepository {
	return &wordRepository{db: db}
}

func (r *wordRepository) List(ctx context.Context, random bool) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("listing words: random=%v", random)

	query := sqlBuilder.Select(wordColumns...).From("Words")
	if random {
		query = query.OrderBy("RANDOM()")
	} else {
		query = query.OrderBy("wordId")
	}
	words, err := queryWords(ctx, r.db, query)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, err
	}
	log.Debug("listed %d words", len(words))
	return words, nil
}

func (r *wordRepository) Random(ctx context.Context, limit int) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("fetching random words: limit=%d", limit)

	if limit <= 0 {
		return nil, nil
	}
	query := sqlBuilder.Select(wordColumns...).From("Words").OrderBy("RANDOM()").Limit(uint64(limit))
	return queryWords(ctx, r.db, query)
}

func (r *wordRepository) Get(ctx context.Context, id int64) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("getting word: id=%d", id)

	stmt, args, err := sqlBuilder.Select(wordColumns...).From("Words").Where(squirrel.Eq{"wordId": id}).ToSql()
	if err != nil {
		return nil, err
	}
	w, err := scanWord(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get word: %v", err)
		return nil, err
	}
	return &w, nil
}

// FindByText matches the display string case-insensitively.
func (r *wordRepository) FindByText(ctx context.Context, text string) (*models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("finding word by text: %s", text)

	stmt, args, err := sqlBuilder.Select(wordColumns...).
		From("Words").
		Where("wordString = ? COLLATE NOCASE", text).
		OrderBy("wordId").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	w, err := scanWord(r.db.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("word not found: %s", text)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to find word: %v", err)
		return nil, err
	}
	return &w, nil
}

// ByIDs returns the words that exist among ids, in the order of ids.
func (r *wordRepository) ByIDs(ctx context.Context, ids []int64) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("fetching words by id: count=%d", len(ids))

	if len(ids) == 0 {
		return nil, nil
	}
	found := make(map[int64]models.Word, len(ids))
	for _, chunk := range lo.Chunk(lo.Uniq(ids), queueChunkSize) {
		query := sqlBuilder.Select(wordColumns...).From("Words").Where(squirrel.Eq{"wordId": chunk})
		words, err := queryWords(ctx, r.db, query)
		if err != nil {
			log.Error("failed to fetch words by id: %v", err)
			return nil, err
		}
		for _, w := range words {
			found[w.ID] = w
		}
	}

	return lo.FilterMap(ids, func(id int64, _ int) (models.Word, bool) {
		w, ok := found[id]
		return w, ok
	}), nil
}

func (r *wordRepository) AllIDs(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("fetching all word ids")

	rows, err := r.db.QueryContext(ctx, `SELECT wordId FROM Words ORDER BY wordId`)
	if err != nil {
		log.Error("failed to query word ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *wordRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Words`).Scan(&n); err != nil {
		log.Error("failed to count words: %v", err)
		return 0, err
	}
	log.Debug("word count: %d", n)
	return n, nil
}

// RandomSentence picks one non-empty example sentence, or nil when there is none.
func (r *wordRepository) RandomSentence(ctx context.Context) (*string, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("fetching random example sentence")

	var sentence string
	err := r.db.QueryRowContext(ctx, `
SELECT exampleSentence FROM Words
WHERE exampleSentence IS NOT NULL AND exampleSentence != ''
ORDER BY RANDOM()
LIMIT 1
`).Scan(&sentence)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no example sentences available")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to fetch sentence: %v", err)
		return nil, err
	}
	return &sentence, nil
}

// InsertBatch writes words, replacing rows with the same id.
func (r *wordRepository) InsertBatch(ctx context.Context, words []models.Word) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("inserting batch of %d words", len(words))

	if len(words) == 0 {
		return 0, nil
	}

	err := tx(ctx, r.db, func(tx *sql.Tx) error {
		for _, chunk := range lo.Chunk(words, 100) {
			insert := sqlBuilder.Insert("Words").Options("OR REPLACE").Columns(wordColumns...)
			for _, w := range chunk {
				insert = insert.Values(w.ID, w.Text, w.Phonetic, w.PartsOfSpeechRaw, w.ExampleSentence, w.SubstitutesRaw, w.UsageAnalysis)
			}
			stmt, args, err := insert.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
				log.Error("failed to insert words: %v", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.Debug("inserted %d words", len(words))
	return len(words), nil
}

func (r *wordRepository) UnclaimedFromQueue(ctx context.Context, userID int64, queue []int64, limit int) ([]models.Word, error) {
	log := logger.FromContext(ctx).WithPrefix("word_repo")
	log.Debug("taking unclaimed words from queue: user_id=%d, queue_len=%d, limit=%d", userID, len(queue), limit)

	if limit <= 0 || len(queue) == 0 {
		return nil, nil
	}

	var out []models.Word
	for _, chunk := range lo.Chunk(lo.Uniq(queue), queueChunkSize) {
		query := sqlBuilder.Select(qualified("w", wordColumns)...).
			From("Words w").
			Where(squirrel.Eq{"w.wordId": chunk}).
			Where("NOT EXISTS (SELECT 1 FROM UserWordData u WHERE u.userId = ? AND u.wordId = w.wordId)", userID)

		words, err := queryWords(ctx, r.db, query)
		if err != nil {
			log.Error("failed to query queue chunk: %v", err)
			return nil, err
		}
		byID := lo.KeyBy(words, func(w models.Word) int64 { return w.ID })

		for _, id := range chunk {
			if w, ok := byID[id]; ok {
				out = append(out, w)
				if len(out) == limit {
					log.Debug("queue satisfied limit of %d", limit)
					return out, nil
				}
			}
		}
	}
	log.Debug("queue yielded %d of %d words", len(out), limit)
	return out, nil
}
