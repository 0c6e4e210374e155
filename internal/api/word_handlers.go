package api

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wordspark/echo/internal/errors"
	"github.com/wordspark/echo/internal/logger"
	"github.com/wordspark/echo/internal/models"
	"github.com/wordspark/echo/internal/worker"
)

const (
	defaultRandomCount    = 10
	defaultMaxImportBytes = 8 << 20
)

func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	random := r.URL.Query().Get("random") == "true"

	words, err := s.WordService.ListWords(r.Context(), random)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, words)
}

func (s *Server) handleRandomWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	count := defaultRandomCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			log.Warn("invalid count: %s", raw)
			handleError(w, r, errors.NewBadRequestError("invalid count"))
			return
		}
		count = n
	}

	words, err := s.WordService.RandomWords(r.Context(), count)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, words)
}

func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := s.WordService.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, detail)
}

func (s *Server) handleDailySentence(w http.ResponseWriter, r *http.Request) {
	sentence, err := s.WordService.DailySentence(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"sentence": sentence})
}

func (s *Server) handlePronounce(w http.ResponseWriter, r *http.Request) {
	result, err := s.WordService.Pronounce(r.Context(), chi.URLParam(r, "word"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

// handleImportWords accepts a JSON array of words and queues it for a
// background import.
func (s *Server) handleImportWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	limit := s.MaxImportBytes
	if limit <= 0 {
		limit = defaultMaxImportBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	words, err := models.DecodeImport(r.Body)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		log.Warn("rejecting import over %d bytes", tooLarge.Limit)
		handleError(w, r, errors.NewTooLargeError(tooLarge.Limit))
		return
	}
	if err != nil {
		log.Warn("rejecting import: %v", err)
		handleError(w, r, errors.NewBadRequestError("invalid import: "+err.Error()))
		return
	}
	if len(words) == 0 {
		handleError(w, r, errors.NewValidationError("words", "at least one word is required"))
		return
	}

	if err := s.JobQueue.EnqueueImport(words); err != nil {
		if stderrors.Is(err, worker.ErrQueueFull) || stderrors.Is(err, worker.ErrPoolStopped) {
			handleError(w, r, errors.NewUnavailableError("import queue is not accepting work", err))
			return
		}
		handleError(w, r, err)
		return
	}

	log.Info("queued import of %d words", len(words))
	writeJSON(w, r, http.StatusAccepted, map[string]int{"received": len(words)})
}
